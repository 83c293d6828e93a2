package repository

import (
	"github.com/tdlam/formdesk/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll(page, pageSize int) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(page, pageSize int) ([]model.User, error) {
	var users []model.User
	offset := (page - 1) * pageSize
	err := r.db.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user, their forms with all dependent rows, and detaches
// their responses to other users' forms. Mirrors the DB-level cascade and
// SET NULL foreign key actions, but inside one transaction so every backend
// behaves the same.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		formIDs := tx.Model(&model.Form{}).Select("id").Where("user_id = ?", id)
		responseIDs := tx.Model(&model.Response{}).Select("id").Where("form_id IN (?)", formIDs)

		if err := tx.Where("response_id IN (?)", responseIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id IN (?)", formIDs).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id IN (?)", formIDs).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Form{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Response{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
