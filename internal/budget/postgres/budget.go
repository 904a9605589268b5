package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parkconserve/park-management/internal/budget"
)

const budgetWithNamesSelect = `budgets.*,
	fo.first_name AS created_by_name,
	go.first_name AS approved_by_name`

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create inserts the budget and its items in one transaction so a
// partial item set is never persisted.
func (r *BudgetRepository) Create(b *budget.Budget, items []budget.Item) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].BudgetID = b.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BudgetRepository) GetByID(id int64) (*budget.Budget, error) {
	var b budget.Budget
	err := r.db.Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budget.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) ListByCreator(creatorID int64) ([]*budget.BudgetWithNames, error) {
	return r.list(r.db.Where("budgets.created_by = ?", creatorID))
}

func (r *BudgetRepository) ListByCreatorAndStatus(creatorID int64, status string) ([]*budget.BudgetWithNames, error) {
	return r.list(r.db.Where("budgets.created_by = ? AND budgets.status = ?", creatorID, status))
}

func (r *BudgetRepository) ListByParkAndStatus(parkName, status string) ([]*budget.BudgetWithNames, error) {
	return r.list(r.db.Where("budgets.park_name = ? AND budgets.status = ?", parkName, status))
}

func (r *BudgetRepository) ListByStatus(status string) ([]*budget.BudgetWithNames, error) {
	return r.list(r.db.Where("budgets.status = ?", status))
}

func (r *BudgetRepository) ListAll() ([]*budget.BudgetWithNames, error) {
	return r.list(r.db)
}

func (r *BudgetRepository) list(q *gorm.DB) ([]*budget.BudgetWithNames, error) {
	var budgets []*budget.BudgetWithNames
	err := q.Table("budgets").
		Select(budgetWithNamesSelect).
		Joins("LEFT JOIN finance_officers fo ON budgets.created_by = fo.id").
		Joins("LEFT JOIN government_officers go ON budgets.approved_by = go.id").
		Order("budgets.created_at desc").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetRepository) ItemsByBudget(budgetIDs []int64) (map[int64][]budget.Item, error) {
	var items []budget.Item
	err := r.db.Where("budget_id IN ?", budgetIDs).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]budget.Item, len(budgetIDs))
	for _, item := range items {
		grouped[item.BudgetID] = append(grouped[item.BudgetID], item)
	}
	return grouped, nil
}

func (r *BudgetRepository) SumApprovedByCreator(creatorID int64) (float64, error) {
	var total *float64
	err := r.db.Model(&budget.Budget{}).
		Where("status = ? AND created_by = ?", budget.StatusApproved, creatorID).
		Select("sum(total_amount)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// UpdateWithItems rewrites the header and replaces the item set in one
// transaction. A failure mid-reinsert rolls everything back, so stale
// items never survive a partial update.
func (r *BudgetRepository) UpdateWithItems(b *budget.Budget, items []budget.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&budget.Budget{}).
			Where("id = ? AND status = ?", b.ID, budget.StatusSubmitted).
			Updates(map[string]interface{}{
				"title":        b.Title,
				"fiscal_year":  b.FiscalYear,
				"total_amount": b.TotalAmount,
				"park_name":    b.ParkName,
				"description":  b.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return budget.ErrNotSubmitted
		}
		if err := tx.Where("budget_id = ?", b.ID).Delete(&budget.Item{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].BudgetID = b.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Review applies the decision only while the budget is still submitted.
func (r *BudgetRepository) Review(b *budget.Budget) error {
	res := r.db.Model(&budget.Budget{}).
		Where("id = ? AND status = ?", b.ID, budget.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":      b.Status,
			"approved_by": b.ApprovedBy,
			"approved_at": b.ApprovedAt,
			"reason":      b.Reason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return budget.ErrNotSubmitted
	}
	return nil
}
