package service

import (
	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/model"
	"github.com/tdlam/formdesk/internal/repository"
)

// QuestionService implements the question operations. Reads use the
// published-or-owner rule, writes the ownership rule — always checked against
// the owning form, fetched first.
type QuestionService interface {
	Add(req dto.AddQuestionRequest) (*dto.QuestionResponse, *apperr.Error)
	Get(req dto.GetQuestionRequest) (*dto.QuestionResponse, *apperr.Error)
	Update(req dto.UpdateQuestionRequest) (*dto.MessageResponse, *apperr.Error)
	Delete(req dto.DeleteQuestionRequest) (*dto.MessageResponse, *apperr.Error)
	List(req dto.ListQuestionsRequest) (*dto.QuestionListResponse, *apperr.Error)
}

type questionService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	tokens       auth.TokenService
}

func NewQuestionService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, tokens auth.TokenService) QuestionService {
	return &questionService{formRepo: formRepo, questionRepo: questionRepo, tokens: tokens}
}

// ownedForm authenticates the caller and fetches the form, enforcing the
// ownership-or-admin rule shared by every question mutation.
func (s *questionService) ownedForm(token, rawFormID string) (*model.Form, *apperr.Error) {
	caller, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}
	formID, aerr := parseID(rawFormID, "Form")
	if aerr != nil {
		return nil, aerr
	}
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, storeErr("Form", err)
	}
	if !auth.OwnerOrAdmin(caller, form.UserID) {
		return nil, apperr.AccessDenied()
	}
	return form, nil
}

// viewableForm authenticates the caller and fetches the form, enforcing the
// published-or-owner-or-admin read rule.
func (s *questionService) viewableForm(token, rawFormID string) (*model.Form, *apperr.Error) {
	caller, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}
	formID, aerr := parseID(rawFormID, "Form")
	if aerr != nil {
		return nil, aerr
	}
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, storeErr("Form", err)
	}
	if !auth.CanViewForm(caller, form) {
		return nil, apperr.AccessDenied()
	}
	return form, nil
}

func (s *questionService) Add(req dto.AddQuestionRequest) (*dto.QuestionResponse, *apperr.Error) {
	if req.Token == "" || req.FormID == "" || req.Title == "" || req.Type == "" || req.Required == nil {
		return nil, apperr.MissingFields("Token, form ID, title, type, and required flag are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	question := model.Question{
		FormID:   form.ID,
		Title:    req.Title,
		Type:     req.Type,
		Required: *req.Required,
		Options:  req.Options,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("Failed to create question")
		return nil, apperr.Internal(err)
	}

	questionDTO := dto.NewQuestionDTO(&question)
	return &dto.QuestionResponse{Envelope: dto.OK(), Question: &questionDTO}, nil
}

func (s *questionService) Get(req dto.GetQuestionRequest) (*dto.QuestionResponse, *apperr.Error) {
	if req.FormID == "" || req.QuestionID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID, question ID, and token are required")
	}

	form, aerr := s.viewableForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	questionID, aerr := parseID(req.QuestionID, "Question")
	if aerr != nil {
		return nil, aerr
	}
	question, err := s.questionRepo.FindByIDAndFormID(questionID, form.ID)
	if err != nil {
		return nil, storeErr("Question", err)
	}

	questionDTO := dto.NewQuestionDTO(question)
	return &dto.QuestionResponse{Envelope: dto.OK(), Question: &questionDTO}, nil
}

func (s *questionService) Update(req dto.UpdateQuestionRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.QuestionID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID, question ID, and token are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	questionID, aerr := parseID(req.QuestionID, "Question")
	if aerr != nil {
		return nil, aerr
	}
	question, err := s.questionRepo.FindByIDAndFormID(questionID, form.ID)
	if err != nil {
		return nil, storeErr("Question", err)
	}

	if req.Title != nil {
		question.Title = *req.Title
	}
	if req.Type != nil {
		question.Type = *req.Type
	}
	if req.Required != nil {
		question.Required = *req.Required
	}
	if req.Options != nil {
		question.Options = *req.Options
	}
	if req.Order != nil {
		question.OrderNum = *req.Order
	}

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to update question")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Question updated successfully")}, nil
}

func (s *questionService) Delete(req dto.DeleteQuestionRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.QuestionID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID, question ID, and token are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	questionID, aerr := parseID(req.QuestionID, "Question")
	if aerr != nil {
		return nil, aerr
	}
	if _, err := s.questionRepo.FindByIDAndFormID(questionID, form.ID); err != nil {
		return nil, storeErr("Question", err)
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to delete question")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Question deleted successfully")}, nil
}

func (s *questionService) List(req dto.ListQuestionsRequest) (*dto.QuestionListResponse, *apperr.Error) {
	if req.FormID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID and token are required")
	}

	form, aerr := s.viewableForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	questions, err := s.questionRepo.FindByFormID(form.ID)
	if err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("Failed to list questions")
		return nil, apperr.Internal(err)
	}
	return &dto.QuestionListResponse{Envelope: dto.OK(), Questions: dto.NewQuestionDTOs(questions)}, nil
}
