package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/provider"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(app *provider.Application) error {
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now()
	}
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) GetByID(id int64) (*provider.Application, error) {
	var app provider.Application
	err := r.db.Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, provider.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListAll() ([]*provider.Application, error) {
	var apps []*provider.Application
	err := r.db.Order("created_at desc").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) ListByEmail(email string) ([]*provider.Application, error) {
	var apps []*provider.Application
	err := r.db.Where("email = ?", email).Order("created_at desc").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&provider.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ApplicationRepository) CountByStatus() ([]*provider.StatusCount, error) {
	var counts []*provider.StatusCount
	err := r.db.Model(&provider.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
