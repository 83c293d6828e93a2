package repository

import (
	"github.com/tdlam/formdesk/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByIDAndFormID(id, formID uint) (*model.Response, error)
	FindByFormID(formID uint) ([]model.Response, error)
	ReplaceAnswers(responseID uint, answers []model.Answer) error
	Delete(id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// Create inserts the response together with its answers. GORM persists the
// association in the same transaction, so a response never lands without its
// answers.
func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByIDAndFormID(id, formID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Answers").Where("id = ? AND form_id = ?", id, formID).First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByFormID(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("Answers").Where("form_id = ?", formID).Order("submitted_at ASC").Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ReplaceAnswers swaps the full answer set of a response. The delete and
// reinsert run in one transaction so a crash cannot leave the response with
// zero answers.
func (r *responseRepository) ReplaceAnswers(responseID uint, answers []model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", responseID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ID = 0
			answers[i].ResponseID = responseID
		}
		if len(answers) == 0 {
			return nil
		}
		return tx.Create(&answers).Error
	})
}

func (r *responseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Response{}, id).Error
	})
}
