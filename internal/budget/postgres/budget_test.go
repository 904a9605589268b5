package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/budget"
)

func TestBudgetRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "BudgetRepository Suite")
}

type SQLiteBudget struct {
	ID          int64      `gorm:"primaryKey"`
	Title       string     `gorm:"column:title"`
	FiscalYear  string     `gorm:"column:fiscal_year"`
	TotalAmount float64    `gorm:"column:total_amount"`
	ParkName    string     `gorm:"column:park_name"`
	Description string     `gorm:"column:description"`
	Status      string     `gorm:"column:status"`
	Reason      *string    `gorm:"column:reason"`
	CreatedBy   int64      `gorm:"column:created_by"`
	ApprovedBy  *int64     `gorm:"column:approved_by"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (SQLiteBudget) TableName() string { return "budgets" }

type SQLiteBudgetItem struct {
	ID          int64   `gorm:"primaryKey"`
	BudgetID    int64   `gorm:"column:budget_id"`
	Category    string  `gorm:"column:category"`
	Description string  `gorm:"column:description"`
	Amount      float64 `gorm:"column:amount"`
	Type        string  `gorm:"column:type"`
}

func (SQLiteBudgetItem) TableName() string { return "budget_items" }

type SQLiteFinanceOfficer struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"column:first_name"`
}

func (SQLiteFinanceOfficer) TableName() string { return "finance_officers" }

type SQLiteGovernmentOfficer struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"column:first_name"`
}

func (SQLiteGovernmentOfficer) TableName() string { return "government_officers" }

var _ = Describe("BudgetRepository", func() {
	var (
		db   *gorm.DB
		repo *BudgetRepository
	)

	sampleItems := func() []budget.Item {
		return []budget.Item{
			{Category: "patrols", Description: "Ranger patrol costs", Amount: 6000, Type: budget.ItemTypeExpense},
			{Category: "tours", Description: "Projected tour revenue", Amount: 4000, Type: budget.ItemTypeIncome},
		}
	}

	sampleBudget := func() *budget.Budget {
		return &budget.Budget{
			Title:       "Q3 conservation budget",
			FiscalYear:  "2026",
			TotalAmount: 10000,
			ParkName:    "Yankari National Park",
			Description: "Quarterly operating budget",
			Status:      budget.StatusSubmitted,
			CreatedBy:   1,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteBudget{}, &SQLiteBudgetItem{}, &SQLiteFinanceOfficer{}, &SQLiteGovernmentOfficer{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&SQLiteFinanceOfficer{ID: 1, FirstName: "Ngozi"}).Error).To(Succeed())
		Expect(db.Create(&SQLiteGovernmentOfficer{ID: 7, FirstName: "Ibrahim"}).Error).To(Succeed())

		repo = NewBudgetRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Create", func() {
		It("persists the budget together with its items", func() {
			b := sampleBudget()
			Expect(repo.Create(b, sampleItems())).To(Succeed())
			Expect(b.ID).NotTo(BeZero())

			grouped, err := repo.ItemsByBudget([]int64{b.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(grouped[b.ID]).To(HaveLen(2))
		})
	})

	Describe("list joins", func() {
		It("resolves creator and approver names", func() {
			b := sampleBudget()
			Expect(repo.Create(b, nil)).To(Succeed())

			approvedBy := int64(7)
			now := time.Now()
			Expect(repo.Review(&budget.Budget{
				ID:         b.ID,
				Status:     budget.StatusApproved,
				ApprovedBy: &approvedBy,
				ApprovedAt: &now,
			})).To(Succeed())

			rows, err := repo.ListByCreator(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].CreatedByName).To(Equal("Ngozi"))
			Expect(rows[0].ApprovedByName).NotTo(BeNil())
			Expect(*rows[0].ApprovedByName).To(Equal("Ibrahim"))
		})
	})

	Describe("UpdateWithItems", func() {
		It("replaces the item set atomically", func() {
			b := sampleBudget()
			Expect(repo.Create(b, sampleItems())).To(Succeed())

			b.Title = "Q3 conservation budget (revised)"
			b.TotalAmount = 12000
			replacement := []budget.Item{
				{Category: "infrastructure", Description: "Fence repairs", Amount: 12000, Type: budget.ItemTypeExpense},
			}
			Expect(repo.UpdateWithItems(b, replacement)).To(Succeed())

			stored, err := repo.GetByID(b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Title).To(Equal("Q3 conservation budget (revised)"))

			grouped, err := repo.ItemsByBudget([]int64{b.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(grouped[b.ID]).To(HaveLen(1))
			Expect(grouped[b.ID][0].Category).To(Equal("infrastructure"))
		})

		It("refuses once the budget has been decided", func() {
			b := sampleBudget()
			Expect(repo.Create(b, sampleItems())).To(Succeed())

			approvedBy := int64(7)
			now := time.Now()
			Expect(repo.Review(&budget.Budget{
				ID:         b.ID,
				Status:     budget.StatusApproved,
				ApprovedBy: &approvedBy,
				ApprovedAt: &now,
			})).To(Succeed())

			err := repo.UpdateWithItems(b, sampleItems())
			Expect(err).To(MatchError(budget.ErrNotSubmitted))

			grouped, err := repo.ItemsByBudget([]int64{b.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(grouped[b.ID]).To(HaveLen(2), "items must survive a refused update")
		})
	})

	Describe("Review", func() {
		It("only decides a budget once", func() {
			b := sampleBudget()
			Expect(repo.Create(b, nil)).To(Succeed())

			approvedBy := int64(7)
			now := time.Now()
			decision := &budget.Budget{
				ID:         b.ID,
				Status:     budget.StatusApproved,
				ApprovedBy: &approvedBy,
				ApprovedAt: &now,
			}
			Expect(repo.Review(decision)).To(Succeed())
			Expect(repo.Review(decision)).To(MatchError(budget.ErrNotSubmitted))
		})
	})

	Describe("SumApprovedByCreator", func() {
		It("sums only approved budgets for the creator", func() {
			first := sampleBudget()
			Expect(repo.Create(first, nil)).To(Succeed())
			second := sampleBudget()
			second.TotalAmount = 5000
			Expect(repo.Create(second, nil)).To(Succeed())

			approvedBy := int64(7)
			now := time.Now()
			Expect(repo.Review(&budget.Budget{
				ID: first.ID, Status: budget.StatusApproved, ApprovedBy: &approvedBy, ApprovedAt: &now,
			})).To(Succeed())

			total, err := repo.SumApprovedByCreator(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(10000.0))
		})

		It("returns zero when nothing is approved", func() {
			total, err := repo.SumApprovedByCreator(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})
})
