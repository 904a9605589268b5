package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/emergency"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *emergency.Request) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id int64) (*emergency.Request, error) {
	var req emergency.Request
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, emergency.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) ListByCreator(creatorID int64, parkName string) ([]*emergency.Request, error) {
	var requests []*emergency.Request
	err := r.db.Where("created_by = ? AND park_name = ?", creatorID, parkName).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByStatus(status string) ([]*emergency.Request, error) {
	var requests []*emergency.Request
	err := r.db.Where("status = ?", status).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListAll() ([]*emergency.Request, error) {
	var requests []*emergency.Request
	err := r.db.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) Update(req *emergency.Request) error {
	return r.db.Save(req).Error
}

// Review applies the decision only while the request is still pending.
func (r *RequestRepository) Review(req *emergency.Request) error {
	res := r.db.Model(&emergency.Request{}).
		Where("id = ? AND status = ?", req.ID, emergency.StatusPending).
		Updates(map[string]interface{}{
			"status":        req.Status,
			"reason":        req.Reason,
			"reviewed_by":   req.ReviewedBy,
			"reviewed_date": req.ReviewedDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return emergency.ErrCannotModify
	}
	return nil
}
