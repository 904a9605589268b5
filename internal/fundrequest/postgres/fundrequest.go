package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/fundrequest"
)

type FundRequestRepository struct {
	db *gorm.DB
}

func NewFundRequestRepository(db *gorm.DB) *FundRequestRepository {
	return &FundRequestRepository{db: db}
}

func (r *FundRequestRepository) Create(fr *fundrequest.FundRequest) error {
	now := time.Now()
	if fr.CreatedAt.IsZero() {
		fr.CreatedAt = now
	}
	fr.UpdatedAt = now
	return r.db.Create(fr).Error
}

func (r *FundRequestRepository) GetByID(id int64) (*fundrequest.FundRequest, error) {
	var fr fundrequest.FundRequest
	err := r.db.Where("id = ?", id).First(&fr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fundrequest.ErrFundRequestNotFound
		}
		return nil, err
	}
	return &fr, nil
}

func (r *FundRequestRepository) ListByPark(parkName string, status string) ([]*fundrequest.FundRequest, error) {
	var requests []*fundrequest.FundRequest
	q := r.db.Where("parkname = ?", parkName)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at desc").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *FundRequestRepository) ListByParkWithStaff(parkName string, status string) ([]*fundrequest.FundRequestWithStaff, error) {
	var rows []*fundrequest.FundRequestWithStaff
	q := r.db.Table("fund_requests fr").
		Select("fr.*, ps.first_name, ps.last_name, ps.email as staff_email").
		Joins("LEFT JOIN park_staff ps ON fr.created_by = ps.id").
		Where("fr.parkname = ?", parkName)
	if status != "" {
		q = q.Where("fr.status = ?", status)
	}
	err := q.Order("fr.created_at desc").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FundRequestRepository) Update(fr *fundrequest.FundRequest) error {
	fr.UpdatedAt = time.Now()
	return r.db.Save(fr).Error
}

// UpdateStatusScoped decides a request only while it is still pending, so
// approved and rejected stay terminal under concurrent decisions.
func (r *FundRequestRepository) UpdateStatusScoped(id int64, parkName, status string) (bool, error) {
	result := r.db.Model(&fundrequest.FundRequest{}).
		Where("id = ? AND parkname = ? AND status = ?", id, parkName, fundrequest.StatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FundRequestRepository) DeleteScoped(id int64, createdBy int64) (bool, error) {
	result := r.db.Where("id = ? AND created_by = ?", id, createdBy).
		Delete(&fundrequest.FundRequest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FundRequestRepository) StatsByPark(parkName string) (*fundrequest.Stats, error) {
	var stats fundrequest.Stats
	err := r.db.Model(&fundrequest.FundRequest{}).
		Select(`count(*) as total_requests,
			count(*) filter (where status = 'pending') as pending_count,
			count(*) filter (where status = 'approved') as approved_count,
			count(*) filter (where status = 'rejected') as rejected_count,
			coalesce(sum(amount), 0) as total_requested,
			coalesce(sum(amount) filter (where status = 'approved'), 0) as total_approved`).
		Where("parkname = ?", parkName).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
