package dto

import (
	"github.com/tdlam/formdesk/internal/model"
)

type AnswerDTO struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

type ResponseDTO struct {
	ID          string      `json:"id"`
	FormID      string      `json:"formId"`
	UserID      *string     `json:"userId,omitempty"` // nil for anonymous submissions
	SubmittedAt string      `json:"submittedAt"`
	Answers     []AnswerDTO `json:"answers"`
}

func NewResponseDTO(response *model.Response) ResponseDTO {
	answers := make([]AnswerDTO, len(response.Answers))
	for i, a := range response.Answers {
		answers[i] = AnswerDTO{QuestionID: formatID(a.QuestionID), Value: a.Value}
	}

	d := ResponseDTO{
		ID:          formatID(response.ID),
		FormID:      formatID(response.FormID),
		SubmittedAt: formatTime(response.SubmittedAt),
		Answers:     answers,
	}
	if response.UserID != nil {
		userID := formatID(*response.UserID)
		d.UserID = &userID
	}
	return d
}

type AnswerInput struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

type SubmitResponseRequest struct {
	FormID  string        `json:"formId"`
	Token   string        `json:"token,omitempty"` // optional for published forms
	Answers []AnswerInput `json:"answers"`
}

type GetResponseRequest struct {
	FormID     string `json:"formId"`
	ResponseID string `json:"responseId"`
	Token      string `json:"token"`
}

type UpdateResponseRequest struct {
	FormID     string        `json:"formId"`
	ResponseID string        `json:"responseId"`
	Token      string        `json:"token"`
	Answers    []AnswerInput `json:"answers"`
}

type DeleteResponseRequest struct {
	FormID     string `json:"formId"`
	ResponseID string `json:"responseId"`
	Token      string `json:"token"`
}

type ListResponsesRequest struct {
	FormID string `json:"formId"`
	Token  string `json:"token"`
}

type SubmitResponseResponse struct {
	Envelope
	ResponseID string `json:"responseId,omitempty"`
}

type ResponseResponse struct {
	Envelope
	Response *ResponseDTO `json:"response,omitempty"`
}

type ResponseListResponse struct {
	Envelope
	Responses []ResponseDTO `json:"responses"`
}
