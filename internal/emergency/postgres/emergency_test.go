package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/emergency"
)

func TestEmergencyRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmergencyRepository Suite")
}

type SQLiteEmergencyRequest struct {
	ID            int64      `gorm:"primaryKey"`
	Title         string     `gorm:"column:title"`
	Description   string     `gorm:"column:description"`
	Amount        float64    `gorm:"column:amount"`
	ParkName      string     `gorm:"column:park_name"`
	EmergencyType string     `gorm:"column:emergency_type"`
	Justification string     `gorm:"column:justification"`
	Timeframe     string     `gorm:"column:timeframe"`
	Status        string     `gorm:"column:status"`
	Reason        *string    `gorm:"column:reason"`
	ReviewedBy    *int64     `gorm:"column:reviewed_by"`
	ReviewedDate  *time.Time `gorm:"column:reviewed_date"`
	CreatedBy     int64      `gorm:"column:created_by"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (SQLiteEmergencyRequest) TableName() string { return "emergency_requests" }

var _ = Describe("EmergencyRepository", func() {
	var (
		db   *gorm.DB
		repo *RequestRepository
	)

	decision := func(id int64, status string) *emergency.Request {
		now := time.Now()
		reason := "Road access is critical for ranger safety"
		reviewer := int64(9)
		return &emergency.Request{
			ID:           id,
			Status:       status,
			Reason:       &reason,
			ReviewedBy:   &reviewer,
			ReviewedDate: &now,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteEmergencyRequest{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewRequestRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Review", func() {
		It("stamps the decision on a pending request", func() {
			row := &SQLiteEmergencyRequest{
				Title: "Flood damage repair", Amount: 15000,
				ParkName: "Kainji Lake National Park", Status: emergency.StatusPending,
				CreatedBy: 5, CreatedAt: time.Now(),
			}
			Expect(db.Create(row).Error).To(Succeed())

			Expect(repo.Review(decision(row.ID, emergency.StatusApproved))).To(Succeed())

			var stored SQLiteEmergencyRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(emergency.StatusApproved))
			Expect(stored.ReviewedBy).To(HaveValue(Equal(int64(9))))
			Expect(stored.Reason).NotTo(BeNil())
		})

		It("never overwrites an earlier decision", func() {
			row := &SQLiteEmergencyRequest{
				Title: "Flood damage repair", Amount: 15000,
				ParkName: "Kainji Lake National Park", Status: emergency.StatusApproved,
				CreatedBy: 5, CreatedAt: time.Now(),
			}
			Expect(db.Create(row).Error).To(Succeed())

			err := repo.Review(decision(row.ID, emergency.StatusRejected))

			Expect(err).To(MatchError(emergency.ErrCannotModify))

			var stored SQLiteEmergencyRequest
			Expect(db.First(&stored, row.ID).Error).To(Succeed())
			Expect(stored.Status).To(Equal(emergency.StatusApproved))
		})
	})
})
