package dto

import (
	"github.com/jinzhu/copier"
	"github.com/tdlam/formdesk/internal/model"
)

type FormDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	IsPublished bool   `json:"isPublished"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func NewFormDTO(form *model.Form) FormDTO {
	var d FormDTO
	copier.Copy(&d, form)
	d.ID = formatID(form.ID)
	d.UserID = formatID(form.UserID)
	d.CreatedAt = formatTime(form.CreatedAt)
	d.UpdatedAt = formatTime(form.UpdatedAt)
	return d
}

type CreateFormRequest struct {
	Token       string `json:"token"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type GetFormRequest struct {
	FormID string `json:"formId"`
	Token  string `json:"token,omitempty"` // optional for published forms
}

type ListFormsRequest struct {
	Token string `json:"token"`
}

type UpdateFormRequest struct {
	FormID      string  `json:"formId"`
	Token       string  `json:"token"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

type DeleteFormRequest struct {
	FormID string `json:"formId"`
	Token  string `json:"token"`
}

type FormResponse struct {
	Envelope
	Form      *FormDTO      `json:"form,omitempty"`
	Questions []QuestionDTO `json:"questions,omitempty"`
}

type FormListResponse struct {
	Envelope
	Forms []FormDTO `json:"forms"`
}
