package service

import (
	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/auth"
	"github.com/tdlam/formdesk/internal/dto"
	"github.com/tdlam/formdesk/internal/model"
	"github.com/tdlam/formdesk/internal/repository"
)

// ResponseService implements the response operations. Submission is open to
// anonymous callers on published forms; everything else is gated on the
// owning form's ownership rule.
type ResponseService interface {
	Submit(req dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, *apperr.Error)
	Get(req dto.GetResponseRequest) (*dto.ResponseResponse, *apperr.Error)
	Update(req dto.UpdateResponseRequest) (*dto.MessageResponse, *apperr.Error)
	Delete(req dto.DeleteResponseRequest) (*dto.MessageResponse, *apperr.Error)
	List(req dto.ListResponsesRequest) (*dto.ResponseListResponse, *apperr.Error)
}

type responseService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
	tokens       auth.TokenService
}

func NewResponseService(formRepo repository.FormRepository, responseRepo repository.ResponseRepository, tokens auth.TokenService) ResponseService {
	return &responseService{formRepo: formRepo, responseRepo: responseRepo, tokens: tokens}
}

// ownedForm authenticates the caller and fetches the form, enforcing the
// ownership-or-admin rule shared by every non-submit operation.
func (s *responseService) ownedForm(token, rawFormID string) (*model.Form, *apperr.Error) {
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

func (s *responseService) buildAnswers(inputs []dto.AnswerInput) ([]model.Answer, *apperr.Error) {
	answers := make([]model.Answer, len(inputs))
	for i, in := range inputs {
		questionID, aerr := parseID(in.QuestionID, "Question")
		if aerr != nil {
			return nil, aerr
		}
		answers[i] = model.Answer{QuestionID: questionID, Value: in.Value}
	}
	return answers, nil
}

// Submit records a response. On a published form no token is needed and the
// submission is anonymous; a supplied token is used opportunistically to
// attribute the response, and a broken one is ignored rather than rejected.
// On an unpublished form a valid token is mandatory.
func (s *responseService) Submit(req dto.SubmitResponseRequest) (*dto.SubmitResponseResponse, *apperr.Error) {
	if req.FormID == "" || len(req.Answers) == 0 {
		return nil, apperr.MissingFields("Form ID and answers are required")
	}

	formID, aerr := parseID(req.FormID, "Form")
	if aerr != nil {
		return nil, aerr
	}
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		return nil, storeErr("Form", err)
	}

	var userID *uint
	if !form.IsPublished {
		if req.Token == "" {
			return nil, apperr.AuthRequired()
		}
		caller, err := s.tokens.Verify(req.Token)
		if err != nil {
			return nil, apperr.New(apperr.CodeAuthFailed, "Invalid or expired token")
		}
		userID = &caller.UserID
	} else if req.Token != "" {
		if caller, err := s.tokens.Verify(req.Token); err == nil {
			userID = &caller.UserID
		}
	}

	answers, aerr := s.buildAnswers(req.Answers)
	if aerr != nil {
		return nil, aerr
	}

	response := model.Response{FormID: formID, UserID: userID, Answers: answers}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to create response")
		return nil, apperr.Internal(err)
	}

	responseDTO := dto.NewResponseDTO(&response)
	return &dto.SubmitResponseResponse{Envelope: dto.OK(), ResponseID: responseDTO.ID}, nil
}

func (s *responseService) Get(req dto.GetResponseRequest) (*dto.ResponseResponse, *apperr.Error) {
	if req.FormID == "" || req.ResponseID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID, response ID, and token are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	responseID, aerr := parseID(req.ResponseID, "Response")
	if aerr != nil {
		return nil, aerr
	}
	response, err := s.responseRepo.FindByIDAndFormID(responseID, form.ID)
	if err != nil {
		return nil, storeErr("Response", err)
	}

	responseDTO := dto.NewResponseDTO(response)
	return &dto.ResponseResponse{Envelope: dto.OK(), Response: &responseDTO}, nil
}

// Update replaces the full answer set of the response; it is not a merge.
func (s *responseService) Update(req dto.UpdateResponseRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.ResponseID == "" || req.Token == "" || req.Answers == nil {
		return nil, apperr.MissingFields("Form ID, response ID, token, and answers are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	responseID, aerr := parseID(req.ResponseID, "Response")
	if aerr != nil {
		return nil, aerr
	}
	response, err := s.responseRepo.FindByIDAndFormID(responseID, form.ID)
	if err != nil {
		return nil, storeErr("Response", err)
	}

	answers, aerr := s.buildAnswers(req.Answers)
	if aerr != nil {
		return nil, aerr
	}
	if err := s.responseRepo.ReplaceAnswers(response.ID, answers); err != nil {
		log.Error().Err(err).Uint("responseID", response.ID).Msg("Failed to replace answers")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Response updated successfully")}, nil
}

func (s *responseService) Delete(req dto.DeleteResponseRequest) (*dto.MessageResponse, *apperr.Error) {
	if req.FormID == "" || req.ResponseID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID, response ID, and token are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	responseID, aerr := parseID(req.ResponseID, "Response")
	if aerr != nil {
		return nil, aerr
	}
	if _, err := s.responseRepo.FindByIDAndFormID(responseID, form.ID); err != nil {
		return nil, storeErr("Response", err)
	}

	if err := s.responseRepo.Delete(responseID); err != nil {
		log.Error().Err(err).Uint("responseID", responseID).Msg("Failed to delete response")
		return nil, apperr.Internal(err)
	}
	return &dto.MessageResponse{Envelope: dto.OKMessage("Response deleted successfully")}, nil
}

func (s *responseService) List(req dto.ListResponsesRequest) (*dto.ResponseListResponse, *apperr.Error) {
	if req.FormID == "" || req.Token == "" {
		return nil, apperr.MissingFields("Form ID and token are required")
	}

	form, aerr := s.ownedForm(req.Token, req.FormID)
	if aerr != nil {
		return nil, aerr
	}

	responses, err := s.responseRepo.FindByFormID(form.ID)
	if err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("Failed to list responses")
		return nil, apperr.Internal(err)
	}

	dtos := make([]dto.ResponseDTO, len(responses))
	for i := range responses {
		dtos[i] = dto.NewResponseDTO(&responses[i])
	}
	return &dto.ResponseListResponse{Envelope: dto.OK(), Responses: dtos}, nil
}
