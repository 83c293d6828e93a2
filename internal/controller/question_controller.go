package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdlam/formdesk/internal/dto"
)

// AddQuestionHandler godoc
// @Summary Add a question to a form
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.AddQuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Router /rpc/addQuestion [post]
func (ctrl *Controller) AddQuestionHandler(c *gin.Context) {
	var req dto.AddQuestionRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.questionSvc.Add(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionHandler godoc
// @Summary Get a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.GetQuestionRequest true "Question lookup"
// @Success 200 {object} dto.QuestionResponse
// @Router /rpc/getQuestion [post]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	var req dto.GetQuestionRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.questionSvc.Get(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuestionHandler godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/updateQuestion [post]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	var req dto.UpdateQuestionRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.questionSvc.Update(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.DeleteQuestionRequest true "Question to delete"
// @Success 200 {object} dto.MessageResponse
// @Router /rpc/deleteQuestion [post]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	var req dto.DeleteQuestionRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.questionSvc.Delete(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListQuestionsHandler godoc
// @Summary List a form's questions in display order
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.ListQuestionsRequest true "Form lookup"
// @Success 200 {object} dto.QuestionListResponse
// @Router /rpc/listQuestions [post]
func (ctrl *Controller) ListQuestionsHandler(c *gin.Context) {
	var req dto.ListQuestionsRequest
	if !bind(c, &req) {
		return
	}
	resp, aerr := ctrl.questionSvc.List(req)
	if aerr != nil {
		fail(c, aerr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
