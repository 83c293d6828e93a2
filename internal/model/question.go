package model

import (
	"time"
)

type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FormID    uint      `json:"form_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"` // "text", "multiple_choice", ...
	Required  bool      `json:"required" gorm:"not null;default:false"`
	Options   string    `json:"options,omitempty" gorm:"type:text"` // opaque, interpreted by clients
	OrderNum  int       `json:"order_num" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
