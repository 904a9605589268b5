package park

import (
	"time"

	internal "github.com/parkconserve/park-management/internal"
)

// Park is a catalog entry. Donations, tours and fund requests reference
// parks by name.
type Park struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Location    string    `gorm:"column:location" json:"location"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

func (Park) TableName() string {
	return "parks"
}

var ErrParkNotFound = internal.NewNotFoundError("Park not found", internal.ErrCodeRecordNotFound)
