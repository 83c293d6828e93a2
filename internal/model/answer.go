package model

type Answer struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	ResponseID uint   `json:"response_id" gorm:"not null;index"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Value      string `json:"value" gorm:"type:text"`
}
