package auth

import (
	"github.com/tdlam/formdesk/internal/model"
)

// The two access rules every operation reduces to. Keeping them here, rather
// than re-checking roles inside each service method, keeps the policy in one
// place.

func (id *Identity) IsAdmin() bool {
	return id.Role == model.RoleAdmin
}

// OwnerOrAdmin grants access to the resource owner or any admin caller.
func OwnerOrAdmin(caller *Identity, ownerID uint) bool {
	if caller == nil {
		return false
	}
	return caller.UserID == ownerID || caller.IsAdmin()
}

// CanViewForm grants read access when the form is published, or when the
// ownership rule holds.
func CanViewForm(caller *Identity, form *model.Form) bool {
	if form.IsPublished {
		return true
	}
	return OwnerOrAdmin(caller, form.UserID)
}
