package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/extrafunds"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *extrafunds.Request) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	return r.db.Create(req).Error
}

func (r *RequestRepository) GetByID(id int64) (*extrafunds.Request, error) {
	var req extrafunds.Request
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, extrafunds.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) ListByCreator(creatorID int64, parkName string) ([]*extrafunds.Request, error) {
	var requests []*extrafunds.Request
	err := r.db.Where("created_by = ? AND park_name = ?", creatorID, parkName).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByStatus(status string) ([]*extrafunds.Request, error) {
	var requests []*extrafunds.Request
	err := r.db.Where("status = ?", status).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListAll() ([]*extrafunds.Request, error) {
	var requests []*extrafunds.Request
	err := r.db.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) Update(req *extrafunds.Request) error {
	return r.db.Save(req).Error
}

// Review applies the decision only while the request is still pending.
func (r *RequestRepository) Review(req *extrafunds.Request) error {
	res := r.db.Model(&extrafunds.Request{}).
		Where("id = ? AND status = ?", req.ID, extrafunds.StatusPending).
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
		return extrafunds.ErrCannotModify
	}
	return nil
}
