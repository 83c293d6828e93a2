package model

import (
	"time"
)

type Form struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	UserID      uint       `json:"user_id" gorm:"not null;index"` // owner, immutable after creation
	IsPublished bool       `json:"is_published" gorm:"not null;default:false"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Responses   []Response `json:"responses,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
