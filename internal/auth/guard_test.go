package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdlam/formdesk/internal/model"
)

func TestOwnerOrAdmin(t *testing.T) {
	owner := &Identity{UserID: 1, Role: model.RoleUser}
	stranger := &Identity{UserID: 2, Role: model.RoleUser}
	admin := &Identity{UserID: 3, Role: model.RoleAdmin}

	assert.True(t, OwnerOrAdmin(owner, 1))
	assert.False(t, OwnerOrAdmin(stranger, 1))
	assert.True(t, OwnerOrAdmin(admin, 1))
	assert.False(t, OwnerOrAdmin(nil, 1))
}

func TestCanViewForm(t *testing.T) {
	owner := &Identity{UserID: 1, Role: model.RoleUser}
	stranger := &Identity{UserID: 2, Role: model.RoleUser}
	admin := &Identity{UserID: 3, Role: model.RoleAdmin}

	published := &model.Form{UserID: 1, IsPublished: true}
	draft := &model.Form{UserID: 1, IsPublished: false}

	// A published form is readable by anyone, including anonymous callers.
	assert.True(t, CanViewForm(nil, published))
	assert.True(t, CanViewForm(stranger, published))

	assert.True(t, CanViewForm(owner, draft))
	assert.True(t, CanViewForm(admin, draft))
	assert.False(t, CanViewForm(stranger, draft))
	assert.False(t, CanViewForm(nil, draft))
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
