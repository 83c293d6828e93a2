package repository

import (
	"github.com/tdlam/formdesk/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindAll() ([]model.Form, error)
	FindByUserID(userID uint) ([]model.Form, error)
	Update(form *model.Form) error
	Delete(id uint) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAll() ([]model.Form, error) {
	var forms []model.Form
	if err := r.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepository) FindByUserID(userID uint) ([]model.Form, error) {
	var forms []model.Form
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *formRepository) Update(form *model.Form) error {
	return r.db.Save(form).Error
}

// Delete cascades to the form's questions, responses and their answers in a
// single transaction.
func (r *formRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		responseIDs := tx.Model(&model.Response{}).Select("id").Where("form_id = ?", id)

		if err := tx.Where("response_id IN (?)", responseIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Form{}, id).Error
	})
}
