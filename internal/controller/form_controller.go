package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdlam/formdesk/internal/dto"
)

// CreateFormHandler godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.CreateFormRequest true "Form data"
// @Success 200 {object} dto.FormResponse
// @Router /rpc/createForm [post]
func (ctrl *Controller) CreateFormHandler(c *gin.Context) {
	var req dto.CreateFormRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.formSvc.Create(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFormHandler godoc
// @Summary Get a form with its questions
// @Description Token optional for published forms
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.GetFormRequest true "Form lookup"
// @Success 200 {object} dto.FormResponse
// @Router /rpc/getForm [post]
func (ctrl *Controller) GetFormHandler(c *gin.Context) {
	var req dto.GetFormRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.formSvc.Get(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListFormsHandler godoc
// @Summary List the caller's forms (all forms for admins)
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.ListFormsRequest true "Token"
// @Success 200 {object} dto.FormListResponse
// @Router /rpc/listForms [post]
func (ctrl *Controller) ListFormsHandler(c *gin.Context) {
	var req dto.ListFormsRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.formSvc.List(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateFormHandler godoc
// @Summary Update a form's title, description or published flag
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.UpdateFormRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/updateForm [post]
func (ctrl *Controller) UpdateFormHandler(c *gin.Context) {
	var req dto.UpdateFormRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.formSvc.Update(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteFormHandler godoc
// @Summary Delete a form and everything attached to it
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.DeleteFormRequest true "Form to delete"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/deleteForm [post]
func (ctrl *Controller) DeleteFormHandler(c *gin.Context) {
	var req dto.DeleteFormRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.formSvc.Delete(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
