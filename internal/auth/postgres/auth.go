package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/auth"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByEmail(role auth.Role, email string) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Table(role.TableName()).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindByID(role auth.Role, id int64) (*auth.Account, error) {
	var account auth.Account
	err := r.db.Table(role.TableName()).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *Repository) EmailExists(role auth.Role, email string) (bool, error) {
	var count int64
	err := r.db.Table(role.TableName()).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateVisitor(account *auth.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	return r.db.Table(auth.RoleVisitor.TableName()).Create(account).Error
}

func (r *Repository) UpdatePasswordHash(role auth.Role, id int64, hash string) error {
	return r.db.Table(role.TableName()).Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *Repository) UpdateLastLogin(role auth.Role, id int64, at time.Time) error {
	return r.db.Table(role.TableName()).Where("id = ?", id).
		Update("last_login", at).Error
}
