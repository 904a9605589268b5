package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/extrafunds"
)

func TestExtraFundsRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ExtraFundsRepository Suite")
}

type SQLiteExtraFundsRequest struct {
	ID               int64      `gorm:"primaryKey"`
	Title            string     `gorm:"column:title"`
	Description      string     `gorm:"column:description"`
	Amount           float64    `gorm:"column:amount"`
	ParkName         string     `gorm:"column:park_name"`
	Category         string     `gorm:"column:category"`
	Justification    string     `gorm:"column:justification"`
	ExpectedDuration string     `gorm:"column:expected_duration"`
	Status           string     `gorm:"column:status"`
	Reason           *string    `gorm:"column:reason"`
	ReviewedBy       *int64     `gorm:"column:reviewed_by"`
	ReviewedDate     *time.Time `gorm:"column:reviewed_date"`
	CreatedBy        int64      `gorm:"column:created_by"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
}

func (SQLiteExtraFundsRequest) TableName() string { return "extra_funds_requests" }

var _ = Describe("ExtraFundsRepository", func() {
	var (
		db   *gorm.DB
		repo *RequestRepository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteExtraFundsRequest{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewRequestRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Review", func() {
		It("never overwrites an earlier decision", func() {
			row := &SQLiteExtraFundsRequest{
				Title: "Extended anti-poaching patrols", Amount: 8000,
				ParkName: "Yankari National Park", Status: extrafunds.StatusRejected,
				CreatedBy: 5, CreatedAt: time.Now(),
			}
			Expect(db.Create(row).Error).To(Succeed())

			now := time.Now()
			reason := "Patrol coverage gap confirmed by the field report"
			reviewer := int64(9)
			err := repo.Review(&extrafunds.Request{
				ID:           row.ID,
				Status:       extrafunds.StatusApproved,
				Reason:       &reason,
				ReviewedBy:   &reviewer,
				ReviewedDate: &now,
			})

			Expect(err).To(MatchError(extrafunds.ErrCannotModify))

			var stored SQLiteExtraFundsRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(extrafunds.StatusRejected))
		})
	})
})
