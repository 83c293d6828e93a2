package model

import (
	"time"
)

type Response struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	FormID      uint      `json:"form_id" gorm:"not null;index"`
	UserID      *uint     `json:"user_id,omitempty" gorm:"index"` // nil for anonymous submissions
	Answers     []Answer  `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}
