package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/fundrequest"
)

func TestFundRequestRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FundRequestRepository Suite")
}

type SQLiteFundRequest struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Amount      float64   `gorm:"column:amount"`
	Category    string    `gorm:"column:category"`
	ParkName    string    `gorm:"column:parkname"`
	Urgency     string    `gorm:"column:urgency"`
	Status      string    `gorm:"column:status"`
	CreatedBy   int64     `gorm:"column:created_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteFundRequest) TableName() string { return "fund_requests" }

var _ = Describe("FundRequestRepository", func() {
	var (
		db   *gorm.DB
		repo *FundRequestRepository
	)

	seedRequest := func(status string) *SQLiteFundRequest {
		row := &SQLiteFundRequest{
			Title:     "Ranger patrol equipment",
			Amount:    2500,
			Category:  "equipment",
			ParkName:  "Yankari National Park",
			Urgency:   "high",
			Status:    status,
			CreatedBy: 10,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		Expect(db.Create(row).Error).To(Succeed())
		return row
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteFundRequest{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewFundRequestRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("UpdateStatusScoped", func() {
		It("decides a pending request in the park", func() {
			row := seedRequest(fundrequest.StatusPending)

			changed, err := repo.UpdateStatusScoped(row.ID, row.ParkName, fundrequest.StatusApproved)

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			var stored SQLiteFundRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(fundrequest.StatusApproved))
		})

		It("leaves an approved request untouched", func() {
			row := seedRequest(fundrequest.StatusApproved)

			changed, err := repo.UpdateStatusScoped(row.ID, row.ParkName, fundrequest.StatusRejected)

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			var stored SQLiteFundRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(fundrequest.StatusApproved))
		})

		It("does not touch requests in another park", func() {
			row := seedRequest(fundrequest.StatusPending)

			changed, err := repo.UpdateStatusScoped(row.ID, "Old Oyo National Park", fundrequest.StatusApproved)

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			var stored SQLiteFundRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(fundrequest.StatusPending))
		})
	})
})
