package account_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/account"
	"github.com/parkconserve/park-management/internal/auth"
)

func TestAccount(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Account Suite")
}

type mockAccountRepository struct {
	accounts       map[auth.Role]map[int64]*auth.Account
	nextID         int64
	profileUpdates int
	passwordResets int
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{
		accounts: make(map[auth.Role]map[int64]*auth.Account),
		nextID:   1,
	}
}

func (m *mockAccountRepository) seed(role auth.Role, a *auth.Account) *auth.Account {
	if m.accounts[role] == nil {
		m.accounts[role] = make(map[int64]*auth.Account)
	}
	a.ID = m.nextID
	m.nextID++
	m.accounts[role][a.ID] = a
	return a
}

func (m *mockAccountRepository) FindByID(role auth.Role, id int64) (*auth.Account, error) {
	if a, ok := m.accounts[role][id]; ok {
		return a, nil
	}
	return nil, account.ErrStaffNotFound
}

func (m *mockAccountRepository) EmailExists(role auth.Role, email string, exceptID int64) (bool, error) {
	for id, a := range m.accounts[role] {
		if a.Email == email && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAccountRepository) Create(role auth.Role, a *auth.Account, roleLabel string) error {
	m.seed(role, a)
	return nil
}

func (m *mockAccountRepository) UpdateProfile(role auth.Role, id int64, firstName, lastName, email string, parkName *string) error {
	a, ok := m.accounts[role][id]
	if !ok {
		return account.ErrStaffNotFound
	}
	a.FirstName = firstName
	a.LastName = lastName
	a.Email = email
	if parkName != nil {
		a.ParkName = parkName
	}
	m.profileUpdates++
	return nil
}

func (m *mockAccountRepository) UpdatePasswordHash(role auth.Role, id int64, hash string) error {
	a, ok := m.accounts[role][id]
	if !ok {
		return account.ErrStaffNotFound
	}
	a.PasswordHash = hash
	m.passwordResets++
	return nil
}

func (m *mockAccountRepository) UpdateAvatarURL(role auth.Role, id int64, url string) error {
	a, ok := m.accounts[role][id]
	if !ok {
		return account.ErrStaffNotFound
	}
	a.AvatarURL = &url
	return nil
}

func (m *mockAccountRepository) Delete(role auth.Role, id int64) error {
	delete(m.accounts[role], id)
	return nil
}

func (m *mockAccountRepository) ListByRole(role auth.Role) ([]*account.StaffMember, error) {
	return nil, nil
}

func (m *mockAccountRepository) ListStaff() ([]*account.StaffMember, error) {
	return nil, nil
}

var _ = Describe("AccountService", func() {
	var (
		repo    *mockAccountRepository
		service *account.Service
	)

	validUpdate := account.UpdateStaffDTO{
		FirstName: "Chiamaka",
		LastName:  "Eze",
		Email:     "chiamaka@parkconserve.org",
	}

	BeforeEach(func() {
		repo = newMockAccountRepository()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = account.NewService(repo, nil, nil, nil, "uploads", 4, logger)
	})

	Describe("UpdateStaff", func() {
		It("rejects unknown role labels without touching any table", func() {
			err := service.UpdateStaff("superuser", 1, validUpdate)

			Expect(err).To(MatchError(account.ErrInvalidRole))
			Expect(repo.profileUpdates).To(BeZero())
		})

		It("updates a staff member in the table matching the role", func() {
			seeded := repo.seed(auth.RoleAuditor, &auth.Account{
				FirstName: "Old",
				LastName:  "Name",
				Email:     "old@parkconserve.org",
			})

			err := service.UpdateStaff("auditor", seeded.ID, validUpdate)

			Expect(err).NotTo(HaveOccurred())
			Expect(seeded.Email).To(Equal("chiamaka@parkconserve.org"))
			Expect(repo.profileUpdates).To(Equal(1))
		})

		It("requires a park for park staff", func() {
			seeded := repo.seed(auth.RoleParkStaff, &auth.Account{Email: "staff@parkconserve.org"})

			err := service.UpdateStaff("park-staff", seeded.ID, validUpdate)

			Expect(err).To(MatchError(account.ErrParkRequired))
		})

		It("refuses an email already used by another staff member", func() {
			repo.seed(auth.RoleFinance, &auth.Account{Email: "chiamaka@parkconserve.org"})
			seeded := repo.seed(auth.RoleAuditor, &auth.Account{Email: "old@parkconserve.org"})

			err := service.UpdateStaff("auditor", seeded.ID, validUpdate)

			Expect(err).To(MatchError(account.ErrEmailInUse))
		})
	})

	Describe("DeleteStaff", func() {
		It("rejects unknown role labels", func() {
			Expect(service.DeleteStaff("superuser", 1)).To(MatchError(account.ErrInvalidRole))
		})
	})
})
