package dto

import (
	"github.com/jinzhu/copier"
	"github.com/tdlam/formdesk/internal/model"
)

type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

func NewUserDTO(user *model.User) UserDTO {
	var d UserDTO
	copier.Copy(&d, user)
	d.ID = formatID(user.ID)
	d.CreatedAt = formatTime(user.CreatedAt)
	return d
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type GetUserRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type UpdateUserRequest struct {
	UserID   string  `json:"userId"`
	Token    string  `json:"token"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type ListUsersRequest struct {
	Token    string `json:"token"`
	Page     *int   `json:"page,omitempty"`
	PageSize *int   `json:"pageSize,omitempty"`
}

type UserResponse struct {
	Envelope
	User *UserDTO `json:"user,omitempty"`
}

type UserListResponse struct {
	Envelope
	Users    []UserDTO `json:"users"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}
