package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/dto"
)

func TestCreateUserThenLogin(t *testing.T) {
	e := newEnv(t)

	created, aerr := e.users.Create(dto.CreateUserRequest{
		Email:    "alice@example.com",
		Password: testPassword,
		Name:     "Alice",
	})
	require.Nil(t, aerr)
	assert.True(t, created.Success)
	assert.Equal(t, "user", created.User.Role)
	assert.NotEmpty(t, created.User.ID)

	login, aerr := e.sessions.Login(dto.LoginRequest{Email: "alice@example.com", Password: testPassword})
	require.Nil(t, aerr)
	assert.Equal(t, created.User.ID, login.UserID)

	identity, err := e.tokens.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestCreateUserMissingFields(t *testing.T) {
	e := newEnv(t)

	_, aerr := e.users.Create(dto.CreateUserRequest{Email: "alice@example.com"})
	requireCode(t, aerr, apperr.CodeMissingFields)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "alice@example.com", "Alice")

	_, aerr := e.users.Create(dto.CreateUserRequest{
		Email:    "alice@example.com",
		Password: testPassword,
		Name:     "Other Alice",
	})
	requireCode(t, aerr, apperr.CodeEmailTaken)
}

// Login failures must not reveal whether the email exists.
func TestLoginFailuresAreOpaque(t *testing.T) {
	e := newEnv(t)
	e.signup(t, "alice@example.com", "Alice")

	_, unknownEmail := e.sessions.Login(dto.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	_, wrongPassword := e.sessions.Login(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	requireCode(t, unknownEmail, apperr.CodeAuthFailed)
	requireCode(t, wrongPassword, apperr.CodeAuthFailed)
	assert.Equal(t, unknownEmail.Message, wrongPassword.Message)
}

func TestLogout(t *testing.T) {
	e := newEnv(t)
	_, token := e.signup(t, "alice@example.com", "Alice")

	resp, aerr := e.sessions.Logout(dto.LogoutRequest{Token: token})
	require.Nil(t, aerr)
	assert.Equal(t, "Logout successful", resp.Message)

	_, aerr = e.sessions.Logout(dto.LogoutRequest{Token: "garbage"})
	requireCode(t, aerr, apperr.CodeAuthFailed)

	// Tokens are stateless, so the logged-out token still verifies.
	_, err := e.tokens.Verify(token)
	assert.NoError(t, err)
}

func TestGetUserOwnershipRule(t *testing.T) {
	e := newEnv(t)
	aliceID, aliceToken := e.signup(t, "alice@example.com", "Alice")
	_, bobToken := e.signup(t, "bob@example.com", "Bob")
	adminToken := e.seedAdmin(t)

	own, aerr := e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: aliceToken})
	require.Nil(t, aerr)
	assert.Equal(t, "alice@example.com", own.User.Email)

	_, aerr = e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: bobToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)

	asAdmin, aerr := e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: adminToken})
	require.Nil(t, aerr)
	assert.Equal(t, aliceID, asAdmin.User.ID)

	_, aerr = e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: "garbage"})
	requireCode(t, aerr, apperr.CodeAuthFailed)
}

func TestGetUserNonNumericID(t *testing.T) {
	e := newEnv(t)
	adminToken := e.seedAdmin(t)

	_, aerr := e.users.Get(dto.GetUserRequest{UserID: "abc", Token: adminToken})
	requireCode(t, aerr, apperr.CodeNotFound)
}

func TestUpdateUserChangesPassword(t *testing.T) {
	e := newEnv(t)
	aliceID, aliceToken := e.signup(t, "alice@example.com", "Alice")

	_, aerr := e.users.Update(dto.UpdateUserRequest{
		UserID:   aliceID,
		Token:    aliceToken,
		Password: ptr("new-password"),
	})
	require.Nil(t, aerr)

	_, aerr = e.sessions.Login(dto.LoginRequest{Email: "alice@example.com", Password: testPassword})
	requireCode(t, aerr, apperr.CodeAuthFailed)
	_, aerr = e.sessions.Login(dto.LoginRequest{Email: "alice@example.com", Password: "new-password"})
	require.Nil(t, aerr)
}

func TestUpdateUserEmailTaken(t *testing.T) {
	e := newEnv(t)
	aliceID, aliceToken := e.signup(t, "alice@example.com", "Alice")
	e.signup(t, "bob@example.com", "Bob")

	_, aerr := e.users.Update(dto.UpdateUserRequest{
		UserID: aliceID,
		Token:  aliceToken,
		Email:  ptr("bob@example.com"),
	})
	requireCode(t, aerr, apperr.CodeEmailTaken)

	// Re-submitting the current email is not a conflict.
	_, aerr = e.users.Update(dto.UpdateUserRequest{
		UserID: aliceID,
		Token:  aliceToken,
		Email:  ptr("alice@example.com"),
		Name:   ptr("Alice Updated"),
	})
	require.Nil(t, aerr)

	got, aerr := e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: aliceToken})
	require.Nil(t, aerr)
	assert.Equal(t, "Alice Updated", got.User.Name)
}

func TestDeleteUserInvalidatesToken(t *testing.T) {
	e := newEnv(t)
	aliceID, aliceToken := e.signup(t, "alice@example.com", "Alice")
	e.createForm(t, aliceToken, "Alice's Form")

	_, aerr := e.users.Delete(dto.DeleteUserRequest{UserID: aliceID, Token: aliceToken})
	require.Nil(t, aerr)

	// The account is gone, so the still-signed token no longer resolves.
	_, aerr = e.forms.List(dto.ListFormsRequest{Token: aliceToken})
	requireCode(t, aerr, apperr.CodeAuthFailed)
}

func TestDeleteUserOwnershipRule(t *testing.T) {
	e := newEnv(t)
	aliceID, _ := e.signup(t, "alice@example.com", "Alice")
	_, bobToken := e.signup(t, "bob@example.com", "Bob")
	adminToken := e.seedAdmin(t)

	_, aerr := e.users.Delete(dto.DeleteUserRequest{UserID: aliceID, Token: bobToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)

	_, aerr = e.users.Delete(dto.DeleteUserRequest{UserID: aliceID, Token: adminToken})
	require.Nil(t, aerr)
	_, aerr = e.users.Get(dto.GetUserRequest{UserID: aliceID, Token: adminToken})
	requireCode(t, aerr, apperr.CodeNotFound)
}

func TestListUsersAdminOnly(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	e.signup(t, "bob@example.com", "Bob")
	adminToken := e.seedAdmin(t)

	_, aerr := e.users.List(dto.ListUsersRequest{Token: aliceToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)

	list, aerr := e.users.List(dto.ListUsersRequest{Token: adminToken})
	require.Nil(t, aerr)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 10, list.PageSize)
	assert.Len(t, list.Users, 3)

	paged, aerr := e.users.List(dto.ListUsersRequest{Token: adminToken, Page: ptr(2), PageSize: ptr(2)})
	require.Nil(t, aerr)
	assert.Equal(t, 2, paged.Page)
	assert.Len(t, paged.Users, 1)
}
