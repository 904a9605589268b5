package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/account"
	"github.com/parkconserve/park-management/internal/auth"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByID(role auth.Role, id int64) (*auth.Account, error) {
	var acct auth.Account
	err := r.db.Table(role.TableName()).Where("id = ?", id).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrStaffNotFound
		}
		return nil, err
	}
	return &acct, nil
}

func (r *AccountRepository) EmailExists(role auth.Role, email string, exceptID int64) (bool, error) {
	q := r.db.Table(role.TableName()).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id != ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountRepository) Create(role auth.Role, acct *auth.Account, roleLabel string) error {
	now := time.Now()
	acct.CreatedAt = now
	acct.UpdatedAt = now
	return r.db.Table(role.TableName()).Create(map[string]interface{}{
		"first_name":    acct.FirstName,
		"last_name":     acct.LastName,
		"email":         acct.Email,
		"password_hash": acct.PasswordHash,
		"park_name":     acct.ParkName,
		"role":          roleLabel,
		"created_at":    now,
		"updated_at":    now,
	}).Error
}

func (r *AccountRepository) UpdateProfile(role auth.Role, id int64, firstName, lastName, email string, parkName *string) error {
	fields := map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"updated_at": time.Now(),
	}
	if parkName != nil {
		fields["park_name"] = *parkName
	}
	return r.db.Table(role.TableName()).Where("id = ?", id).Updates(fields).Error
}

func (r *AccountRepository) UpdatePasswordHash(role auth.Role, id int64, hash string) error {
	return r.db.Table(role.TableName()).Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash": hash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *AccountRepository) UpdateAvatarURL(role auth.Role, id int64, url string) error {
	return r.db.Table(role.TableName()).Where("id = ?", id).
		Updates(map[string]interface{}{
			"avatar_url": url,
			"updated_at": time.Now(),
		}).Error
}

func (r *AccountRepository) Delete(role auth.Role, id int64) error {
	return r.db.Table(role.TableName()).Where("id = ?", id).Delete(&auth.Account{}).Error
}

func (r *AccountRepository) ListByRole(role auth.Role) ([]*account.StaffMember, error) {
	var members []*account.StaffMember
	err := r.db.Table(role.TableName()).
		Select("id, first_name, last_name, email, park_name, role, last_login, created_at").
		Order("created_at desc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

const staffUnionQuery = `
SELECT id, first_name, last_name, email, park_name, role, last_login, created_at FROM park_staff
UNION ALL
SELECT id, first_name, last_name, email, park_name, role, last_login, created_at FROM auditors
UNION ALL
SELECT id, first_name, last_name, email, park_name, role, last_login, created_at FROM government_officers
UNION ALL
SELECT id, first_name, last_name, email, park_name, role, last_login, created_at FROM finance_officers
ORDER BY created_at DESC`

func (r *AccountRepository) ListStaff() ([]*account.StaffMember, error) {
	var members []*account.StaffMember
	if err := r.db.Raw(staffUnionQuery).Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
