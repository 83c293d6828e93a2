package dto

import (
	"github.com/jinzhu/copier"
	"github.com/tdlam/formdesk/internal/model"
)

type QuestionDTO struct {
	ID        string `json:"id"`
	FormID    string `json:"formId"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Required  bool   `json:"required"`
	Options   string `json:"options,omitempty"`
	Order     int    `json:"order"`
	CreatedAt string `json:"createdAt"`
}

func NewQuestionDTO(question *model.Question) QuestionDTO {
	var d QuestionDTO
	copier.Copy(&d, question)
	d.ID = formatID(question.ID)
	d.FormID = formatID(question.FormID)
	d.Order = question.OrderNum
	d.CreatedAt = formatTime(question.CreatedAt)
	return d
}

func NewQuestionDTOs(questions []model.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, len(questions))
	for i := range questions {
		dtos[i] = NewQuestionDTO(&questions[i])
	}
	return dtos
}

type AddQuestionRequest struct {
	Token    string `json:"token"`
	FormID   string `json:"formId"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Required *bool  `json:"required"`
	Options  string `json:"options,omitempty"`
}

type GetQuestionRequest struct {
	FormID     string `json:"formId"`
	QuestionID string `json:"questionId"`
	Token      string `json:"token"`
}

type UpdateQuestionRequest struct {
	FormID     string  `json:"formId"`
	QuestionID string  `json:"questionId"`
	Token      string  `json:"token"`
	Title      *string `json:"title,omitempty"`
	Type       *string `json:"type,omitempty"`
	Required   *bool   `json:"required,omitempty"`
	Options    *string `json:"options,omitempty"`
	Order      *int    `json:"order,omitempty"`
}

type DeleteQuestionRequest struct {
	FormID     string `json:"formId"`
	QuestionID string `json:"questionId"`
	Token      string `json:"token"`
}

type ListQuestionsRequest struct {
	FormID string `json:"formId"`
	Token  string `json:"token"`
}

type QuestionResponse struct {
	Envelope
	Question *QuestionDTO `json:"question,omitempty"`
}

type QuestionListResponse struct {
	Envelope
	Questions []QuestionDTO `json:"questions"`
}
