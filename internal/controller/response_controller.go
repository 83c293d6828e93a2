package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdlam/formdesk/internal/dto"
)

// SubmitResponseHandler godoc
// @Summary Submit a response to a form
// @Description Anonymous submissions are allowed on published forms
// @Tags responses
// @Accept json
// @Produce json
// @Param request body dto.SubmitResponseRequest true "Answers"
// @Success 200 {object} dto.SubmitResponseResponse
// @Router /rpc/submitResponse [post]
func (ctrl *Controller) SubmitResponseHandler(c *gin.Context) {
	var req dto.SubmitResponseRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.responseSvc.Submit(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetResponseHandler godoc
// @Summary Get a response with its answers
// @Tags responses
// @Accept json
// @Produce json
// @Param request body dto.GetResponseRequest true "Response lookup"
// @Success 200 {object} dto.ResponseResponse
// @Router /rpc/getResponse [post]
func (ctrl *Controller) GetResponseHandler(c *gin.Context) {
	var req dto.GetResponseRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.responseSvc.Get(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateResponseHandler godoc
// @Summary Replace a response's answer set
// @Tags responses
// @Accept json
// @Produce json
// @Param request body dto.UpdateResponseRequest true "New answer set"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/updateResponse [post]
func (ctrl *Controller) UpdateResponseHandler(c *gin.Context) {
	var req dto.UpdateResponseRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.responseSvc.Update(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteResponseHandler godoc
// @Summary Delete a response
// @Tags responses
// @Accept json
// @Produce json
// @Param request body dto.DeleteResponseRequest true "Response to delete"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/deleteResponse [post]
func (ctrl *Controller) DeleteResponseHandler(c *gin.Context) {
	var req dto.DeleteResponseRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.responseSvc.Delete(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListResponsesHandler godoc
// @Summary List a form's responses with answers
// @Tags responses
// @Accept json
// @Produce json
// @Param request body dto.ListResponsesRequest true "Form lookup"
// @Success 200 {object} dto.ResponseListResponse
// @Router /rpc/listResponses [post]
func (ctrl *Controller) ListResponsesHandler(c *gin.Context) {
	var req dto.ListResponsesRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.responseSvc.List(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
