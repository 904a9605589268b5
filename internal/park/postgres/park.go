package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/park"
)

type ParkRepository struct {
	db *gorm.DB
}

func NewParkRepository(db *gorm.DB) *ParkRepository {
	return &ParkRepository{db: db}
}

func (r *ParkRepository) GetAll() ([]*park.Park, error) {
	var parks []*park.Park
	if err := r.db.Order("name asc").Find(&parks).Error; err != nil {
		return nil, err
	}
	return parks, nil
}

func (r *ParkRepository) GetByName(name string) (*park.Park, error) {
	var p park.Park
	err := r.db.Where("name = ?", name).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
