package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	WithTx(tx *gorm.DB) StudentRepository
	Create(student *model.Student) error
	FindAll() ([]model.Student, error)
	FindByUserID(userID uint) (*model.Student, error)
	UpdateFields(userID uint, fields map[string]interface{}) error
	Delete(userID uint) error
	SetIntensiveMode(userID uint, enabled bool) error
	AddXP(userID uint, xp int) (int, error)
	FindRanking() ([]struct {
		UserID   uint
		Name     string
		XP       int
		PhotoURL string
	}, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) WithTx(tx *gorm.DB) StudentRepository {
	return &studentRepository{db: tx}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Student{}).Where("user_id = ?", userID).Updates(fields).Error
}

func (r *studentRepository) Delete(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Student{}).Error
}

func (r *studentRepository) SetIntensiveMode(userID uint, enabled bool) error {
	return r.db.Model(&model.Student{}).Where("user_id = ?", userID).
		Update("intensive_mode", enabled).Error
}

// AddXP increments the experience counter atomically and returns the new total.
func (r *studentRepository) AddXP(userID uint, xp int) (int, error) {
	err := r.db.Model(&model.Student{}).Where("user_id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", xp)).Error
	if err != nil {
		return 0, err
	}
	var student model.Student
	if err := r.db.Select("xp").Where("user_id = ?", userID).First(&student).Error; err != nil {
		return 0, err
	}
	return student.XP, nil
}

func (r *studentRepository) FindRanking() ([]struct {
	UserID   uint
	Name     string
	XP       int
	PhotoURL string
}, error) {
	var results []struct {
		UserID   uint
		Name     string
		XP       int
		PhotoURL string
	}
	err := r.db.Model(&model.Student{}).
		Select("students.user_id AS user_id, users.name AS name, students.xp AS xp, users.photo_url AS photo_url").
		Joins("JOIN users ON users.id = students.user_id").
		Order("students.xp DESC, users.name ASC").
		Scan(&results).Error
	return results, err
}
