package service

import (
	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/model"
	"github.com/tdlam/formdesk/internal/repository"
)

// FormService implements the form operations.
type FormService interface {
	Create(req dto.CreateFormRequest) (*dto.FormResponse, *apperr.Error)
	Get(req dto.GetFormRequest) (*dto.FormResponse, *apperr.Error)
	List(req dto.ListFormsRequest) (*dto.FormListResponse, *apperr.Error)
	Update(req dto.UpdateFormRequest) (*dto.MessageResponse, *apperr.Error)
	Delete(req dto.DeleteFormRequest) (*dto.MessageResponse, *apperr.Error)
}

type formService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	tokens       auth.TokenService
}

func NewFormService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, tokens auth.TokenService) FormService {
	return &formService{formRepo: formRepo, questionRepo: questionRepo, tokens: tokens}
}

func (s *formService) Create(req dto.CreateFormRequest) (*dto.FormResponse, *apperr.Error) {
	if req.Token == "" || req.Title == "" {
		return nil, apperr.MissingFields("Token and title are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	form := model.Form{
		Title:       req.Title,
		Description: req.Description,
		UserID:      caller.UserID,
		IsPublished: false,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("Failed to create form")
		return nil, apperr.Internal(err)
	}

	formDTO := dto.NewFormDTO(&form)
	return &dto.FormResponse{Envelope: dto.OK(), Form: &formDTO}, nil
}

// Get returns the form and its questions. No token is needed for a published
// form; an unpublished form requires the owner or an admin.
func (s *formService) Get(req dto.GetFormRequest) (*dto.FormResponse, *apperr.Error) {
	if req.FormID == "" {
		return nil, apperr.MissingFields("Form ID is required")
	}

	formID, aerr := parseID(req.FormID, "Form")
	if aerr != nil {
		return nil, aerr
	}
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, storeErr("Form", err)
	}

	if !form.IsPublished {
		if req.Token == "" {
			return nil, apperr.AuthRequired()
		}
		caller, err := s.tokens.Verify(req.Token)
		if err != nil {
			return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
		}
		if !auth.CanViewForm(caller, form) {
			return nil, apperr.AccessDenied()
		}
	}

	questions, err := s.questionRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to load form questions")
		return nil, apperr.Internal(err)
	}

	formDTO := dto.NewFormDTO(form)
	return &dto.FormResponse{Envelope: dto.OK(), Form: &formDTO, Questions: dto.NewQuestionDTOs(questions)}, nil
}

// List returns the caller's forms; admins see every form.
func (s *formService) List(req dto.ListFormsRequest) (*dto.FormListResponse, *apperr.Error) {
	if req.Token == "" {
		return nil, apperr.MissingFields("Token is required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	var forms []model.Form
	if caller.IsAdmin() {
		forms, err = s.formRepo.FindAll()
	} else {
		forms, err = s.formRepo.FindByUserID(caller.UserID)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list forms")
		return nil, apperr.Internal(err)
	}

	dtos := make([]dto.FormDTO, len(forms))
	for i := range forms {
		dtos[i] = dto.NewFormDTO(&forms[i])
	}
	return &dto.FormListResponse{Envelope: dto.OK(), Forms: dtos}, nil
}

func (s *formService) Update(req dto.UpdateFormRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID and token are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	formID, aerr := parseID(req.FormID, "Form")
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

	// Owner is immutable; only these three fields may change.
	if req.Title != nil {
		form.Title = *req.Title
	}
	if req.Description != nil {
		form.Description = *req.Description
	}
	if req.IsPublished != nil {
		form.IsPublished = *req.IsPublished
	}

	if err := s.formRepo.Update(form); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to update form")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Form updated successfully")}, nil
}

func (s *formService) Delete(req dto.DeleteFormRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID and token are required")
	}

	caller, err := s.tokens.Verify(req.Token)
	if err != nil {
		return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
	}

	formID, aerr := parseID(req.FormID, "Form")
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

	if err := s.formRepo.Delete(formID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to delete form")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Form deleted successfully")}, nil
}
