package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdlam/formdesk/internal/dto"
)

// CreateUserHandler godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "New user data"
// @Success 200 {object} dto.UserResponse
// @Router /rpc/createUser [post]
func (ctrl *Controller) CreateUserHandler(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.userSvc.Create(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserHandler godoc
// @Summary Get a user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.GetUserRequest true "User lookup"
// @Success 200 {object} dto.UserResponse
// @Router /rpc/getUser [post]
func (ctrl *Controller) GetUserHandler(c *gin.Context) {
	var req dto.GetUserRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.userSvc.Get(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUserHandler godoc
// @Summary Update a user's name, email or password
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/updateUser [post]
func (ctrl *Controller) UpdateUserHandler(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.userSvc.Update(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUserHandler godoc
// @Summary Delete a user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.DeleteUserRequest true "User to delete"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/deleteUser [post]
func (ctrl *Controller) DeleteUserHandler(c *gin.Context) {
	var req dto.DeleteUserRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.userSvc.Delete(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListUsersHandler godoc
// @Summary List users (admin only, paginated)
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ListUsersRequest true "Pagination"
// @Success 200 {object} dto.UserListResponse
// @Router /rpc/listUsers [post]
func (ctrl *Controller) ListUsersHandler(c *gin.Context) {
	var req dto.ListUsersRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.userSvc.List(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
