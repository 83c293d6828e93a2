package repository

import (
	"github.com/tdlam/formdesk/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDAndFormID(id, formID uint) (*model.Question, error)
	FindByFormID(formID uint) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question. When OrderNum is unset it is assigned the
// current max order within the form plus one.
func (r *questionRepository) Create(question *model.Question) error {
	if question.OrderNum <= 0 {
		var maxOrder int
		err := r.db.Model(&model.Question{}).
			Where("form_id = ?", question.FormID).
			Select("COALESCE(MAX(order_num), 0)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}
		question.OrderNum = maxOrder + 1
	}
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDAndFormID(id, formID uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Where("id = ? AND form_id = ?", id, formID).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("form_id = ?", formID).Order("order_num ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
