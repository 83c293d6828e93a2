package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/service"
)

// Controller exposes every operation as an RPC-style POST endpoint with the
// arguments in the JSON body. All replies use HTTP 200 and carry the uniform
// envelope; failures never surface as transport-level faults.
type Controller struct {
	sessionSvc  service.SessionService
	userSvc     service.UserService
	formSvc     service.FormService
	questionSvc service.QuestionService
	responseSvc service.ResponseService
}

func NewController(
	sessionSvc service.SessionService,
	userSvc service.UserService,
	formSvc service.FormService,
	questionSvc service.QuestionService,
	responseSvc service.ResponseService,
) *Controller {
	return &Controller{
		sessionSvc:  sessionSvc,
		userSvc:     userSvc,
		formSvc:     formSvc,
		questionSvc: questionSvc,
		responseSvc: responseSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	rpc := router.Group("/api/v1/rpc")
	{
		// Auth
		rpc.POST("/loginUser", ctrl.LoginUserHandler)
		rpc.POST("/logoutUser", ctrl.LogoutUserHandler)

		// Users
		rpc.POST("/createUser", ctrl.CreateUserHandler)
		rpc.POST("/getUser", ctrl.GetUserHandler)
		rpc.POST("/updateUser", ctrl.UpdateUserHandler)
		rpc.POST("/deleteUser", ctrl.DeleteUserHandler)
		rpc.POST("/listUsers", ctrl.ListUsersHandler)

		// Forms
		rpc.POST("/createForm", ctrl.CreateFormHandler)
		rpc.POST("/getForm", ctrl.GetFormHandler)
		rpc.POST("/listForms", ctrl.ListFormsHandler)
		rpc.POST("/updateForm", ctrl.UpdateFormHandler)
		rpc.POST("/deleteForm", ctrl.DeleteFormHandler)

		// Questions
		rpc.POST("/addQuestion", ctrl.AddQuestionHandler)
		rpc.POST("/getQuestion", ctrl.GetQuestionHandler)
		rpc.POST("/updateQuestion", ctrl.UpdateQuestionHandler)
		rpc.POST("/deleteQuestion", ctrl.DeleteQuestionHandler)
		rpc.POST("/listQuestions", ctrl.ListQuestionsHandler)

		// Responses
		rpc.POST("/submitResponse", ctrl.SubmitResponseHandler)
		rpc.POST("/getResponse", ctrl.GetResponseHandler)
		rpc.POST("/updateResponse", ctrl.UpdateResponseHandler)
		rpc.POST("/deleteResponse", ctrl.DeleteResponseHandler)
		rpc.POST("/listResponses", ctrl.ListResponsesHandler)
	}
}

// bind decodes the request body; a malformed body counts as missing fields
// since the operation's required arguments cannot be present.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
		fail(c, apperr.MissingFields("Invalid request body"))
		return false
	}
	return true
}

func fail(c *gin.Context, err *apperr.Error) {
	if err.Code == apperr.CodeServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Operation failed")
	}
	c.JSON(http.StatusOK, dto.Failure(err))
}
