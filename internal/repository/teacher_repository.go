package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	WithTx(tx *gorm.DB) TeacherRepository
	Create(teacher *model.Teacher) error
	FindAll() ([]model.Teacher, error)
	FindByUserID(userID uint) (*model.Teacher, error)
	UpdateSubject(userID uint, subject string) error
	Delete(userID uint) error
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) WithTx(tx *gorm.DB) TeacherRepository {
	return &teacherRepository{db: tx}
}

func (r *teacherRepository) Create(teacher *model.Teacher) error {
	return r.db.Create(teacher).Error
}

func (r *teacherRepository) FindAll() ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := r.db.Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) FindByUserID(userID uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.Where("user_id = ?", userID).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepository) UpdateSubject(userID uint, subject string) error {
	return r.db.Model(&model.Teacher{}).Where("user_id = ?", userID).
		Update("subject", subject).Error
}

func (r *teacherRepository) Delete(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Teacher{}).Error
}
