package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdlam/formdesk/internal/dto"
)

// LoginUserHandler godoc
// @Summary Authenticate a user
// @Description Validates email/password and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Router /rpc/loginUser [post]
func (ctrl *Controller) LoginUserHandler(c *gin.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.sessionSvc.Login(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutUserHandler godoc
// @Summary Log out
// @Description Acknowledges logout; tokens stay valid until expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Token to log out"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/logoutUser [post]
func (ctrl *Controller) LogoutUserHandler(c *gin.Context) {
	var req dto.LogoutRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.sessionSvc.Logout(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
