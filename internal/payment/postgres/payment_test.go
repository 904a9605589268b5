package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/payment"
)

func TestPaymentRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PaymentRepository Suite")
}

type SQLitePayment struct {
	ID              int64     `gorm:"primaryKey"`
	TransactionID   string    `gorm:"column:transaction_id"`
	PaymentType     string    `gorm:"column:payment_type"`
	Amount          float64   `gorm:"column:amount"`
	CardName        string    `gorm:"column:card_name"`
	CardNumberLast4 string    `gorm:"column:card_number_last4"`
	ExpiryDate      string    `gorm:"column:expiry_date"`
	Status          string    `gorm:"column:status"`
	ParkName        string    `gorm:"column:park_name"`
	CustomerEmail   string    `gorm:"column:customer_email"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (SQLitePayment) TableName() string { return "payments" }

type SQLiteDonation struct {
	ID            int64     `gorm:"primaryKey"`
	Email         string    `gorm:"column:email"`
	Amount        float64   `gorm:"column:amount"`
	Status        string    `gorm:"column:status"`
	TransactionID *string   `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (SQLiteDonation) TableName() string { return "donations" }

type SQLiteTour struct {
	ID            int64     `gorm:"primaryKey"`
	Email         string    `gorm:"column:email"`
	Amount        float64   `gorm:"column:amount"`
	Status        string    `gorm:"column:status"`
	TransactionID *string   `gorm:"column:transaction_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (SQLiteTour) TableName() string { return "tours" }

var _ = Describe("PaymentRepository", func() {
	var (
		db   *gorm.DB
		repo *PaymentRepository
	)

	newPayment := func(paymentType string, amount float64, email string) *payment.Payment {
		return &payment.Payment{
			TransactionID:   payment.NewTransactionID(time.Now()),
			PaymentType:     paymentType,
			Amount:          amount,
			CardName:        "Ada Okafor",
			CardNumberLast4: "4242",
			ExpiryDate:      "12/27",
			Status:          payment.StatusCompleted,
			CustomerEmail:   email,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLitePayment{}, &SQLiteDonation{}, &SQLiteTour{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewPaymentRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("RecordAndComplete", func() {
		It("completes the matching pending donation", func() {
			Expect(db.Create(&SQLiteDonation{
				Email: "ada@mail.test", Amount: 100, Status: "pending", CreatedAt: time.Now(),
			}).Error).To(Succeed())

			p := newPayment(payment.PaymentTypeDonation, 100, "ada@mail.test")
			Expect(repo.RecordAndComplete(p)).To(Succeed())

			var donation SQLiteDonation
			Expect(db.First(&donation).Error).To(Succeed())
			Expect(donation.Status).To(Equal(payment.StatusCompleted))
			Expect(donation.TransactionID).NotTo(BeNil())
			Expect(*donation.TransactionID).To(Equal(p.TransactionID))
		})

		It("completes only the newest matching donation", func() {
			now := time.Now()
			Expect(db.Create(&SQLiteDonation{
				Email: "ada@mail.test", Amount: 100, Status: "pending", CreatedAt: now.Add(-10 * time.Minute),
			}).Error).To(Succeed())
			Expect(db.Create(&SQLiteDonation{
				Email: "ada@mail.test", Amount: 100, Status: "pending", CreatedAt: now,
			}).Error).To(Succeed())

			p := newPayment(payment.PaymentTypeDonation, 100, "ada@mail.test")
			Expect(repo.RecordAndComplete(p)).To(Succeed())

			var donations []SQLiteDonation
			Expect(db.Order("created_at").Find(&donations).Error).To(Succeed())
			Expect(donations[0].Status).To(Equal("pending"))
			Expect(donations[1].Status).To(Equal(payment.StatusCompleted))
		})

		It("rolls back the payment when no donation matches", func() {
			p := newPayment(payment.PaymentTypeDonation, 100, "ada@mail.test")

			Expect(repo.RecordAndComplete(p)).To(MatchError(payment.ErrNoMatchingDonation))

			var count int64
			Expect(db.Model(&SQLitePayment{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero(), "payment insert must not survive a failed match")
		})

		It("ignores records older than the match window", func() {
			Expect(db.Create(&SQLiteDonation{
				Email:     "ada@mail.test",
				Amount:    100,
				Status:    "pending",
				CreatedAt: time.Now().Add(-payment.MatchWindow - time.Minute),
			}).Error).To(Succeed())

			p := newPayment(payment.PaymentTypeDonation, 100, "ada@mail.test")
			Expect(repo.RecordAndComplete(p)).To(MatchError(payment.ErrNoMatchingDonation))
		})

		It("matches tours when the payment type says so", func() {
			Expect(db.Create(&SQLiteTour{
				Email: "ada@mail.test", Amount: 250, Status: "pending", CreatedAt: time.Now(),
			}).Error).To(Succeed())

			p := newPayment(payment.PaymentTypeTour, 250, "ada@mail.test")
			Expect(repo.RecordAndComplete(p)).To(Succeed())

			var tourRow SQLiteTour
			Expect(db.First(&tourRow).Error).To(Succeed())
			Expect(tourRow.Status).To(Equal(payment.StatusCompleted))
		})

		It("does not touch another customer's records", func() {
			Expect(db.Create(&SQLiteDonation{
				Email: "someone-else@mail.test", Amount: 100, Status: "pending", CreatedAt: time.Now(),
			}).Error).To(Succeed())

			p := newPayment(payment.PaymentTypeDonation, 100, "ada@mail.test")
			Expect(repo.RecordAndComplete(p)).To(MatchError(payment.ErrNoMatchingDonation))
		})
	})

	Describe("ListAll", func() {
		It("returns payments newest first", func() {
			Expect(db.Create(&SQLitePayment{
				TransactionID: "TXN-1", PaymentType: payment.PaymentTypeDonation,
				Amount: 10, CustomerEmail: "a@mail.test", CreatedAt: time.Now().Add(-time.Hour),
			}).Error).To(Succeed())
			Expect(db.Create(&SQLitePayment{
				TransactionID: "TXN-2", PaymentType: payment.PaymentTypeTour,
				Amount: 20, CustomerEmail: "b@mail.test", CreatedAt: time.Now(),
			}).Error).To(Succeed())

			payments, err := repo.ListAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(payments).To(HaveLen(2))
			Expect(payments[0].TransactionID).To(Equal("TXN-2"))
		})
	})
})
