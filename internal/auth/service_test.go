package auth_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/auth"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

// Mock repository keyed by role table, mirroring the per-role account
// tables in Postgres.
type mockAccountRepository struct {
	accounts        map[auth.Role]map[string]*auth.Account
	rehashedTo      map[int64]string
	lastLoginSet    map[int64]time.Time
	createError     error
	nextID          int64
	createdVisitors []*auth.Account
}

func newMockAccountRepository() *mockAccountRepository {
	return &mockAccountRepository{
		accounts:     make(map[auth.Role]map[string]*auth.Account),
		rehashedTo:   make(map[int64]string),
		lastLoginSet: make(map[int64]time.Time),
		nextID:       1,
	}
}

func (m *mockAccountRepository) add(role auth.Role, account *auth.Account) {
	if m.accounts[role] == nil {
		m.accounts[role] = make(map[string]*auth.Account)
	}
	account.ID = m.nextID
	m.nextID++
	m.accounts[role][account.Email] = account
}

func (m *mockAccountRepository) FindByEmail(role auth.Role, email string) (*auth.Account, error) {
	if account, ok := m.accounts[role][email]; ok {
		return account, nil
	}
	return nil, auth.ErrAccountNotFound
}

func (m *mockAccountRepository) FindByID(role auth.Role, id int64) (*auth.Account, error) {
	for _, account := range m.accounts[role] {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, auth.ErrAccountNotFound
}

func (m *mockAccountRepository) EmailExists(role auth.Role, email string) (bool, error) {
	_, ok := m.accounts[role][email]
	return ok, nil
}

func (m *mockAccountRepository) CreateVisitor(account *auth.Account) error {
	if m.createError != nil {
		return m.createError
	}
	m.add(auth.RoleVisitor, account)
	m.createdVisitors = append(m.createdVisitors, account)
	return nil
}

func (m *mockAccountRepository) UpdatePasswordHash(role auth.Role, id int64, hash string) error {
	m.rehashedTo[id] = hash
	return nil
}

func (m *mockAccountRepository) UpdateLastLogin(role auth.Role, id int64, at time.Time) error {
	m.lastLoginSet[id] = at
	return nil
}

var _ = Describe("AuthService", func() {
	var (
		repo    *mockAccountRepository
		service *auth.Service
		ctx     context.Context
	)

	newAccount := func(email, password string) *auth.Account {
		hash, err := auth.HashPassword(password, 10)
		Expect(err).NotTo(HaveOccurred())
		return &auth.Account{
			FirstName:    "Test",
			LastName:     "Account",
			Email:        email,
			PasswordHash: hash,
		}
	}

	BeforeEach(func() {
		repo = newMockAccountRepository()
		tokens := auth.NewJWTTokenGenerator("test-secret-that-is-long-enough-0", time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = auth.NewService(repo, tokens, nil, logger, 10)
		ctx = context.Background()
	})

	Describe("Login", func() {
		It("authenticates a staff member found in any role table", func() {
			repo.add(auth.RoleFinance, newAccount("finance@parks.test", "Sekret99"))

			result, err := service.Login(ctx, auth.LoginDTO{Email: "finance@parks.test", Password: "Sekret99"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Role).To(Equal(auth.RoleFinance))
			Expect(result.Token).NotTo(BeEmpty())
			Expect(result.User.Email).To(Equal("finance@parks.test"))
		})

		It("resolves a shared email to the highest-priority table", func() {
			repo.add(auth.RoleAdmin, newAccount("shared@parks.test", "AdminPw1"))
			repo.add(auth.RoleGovernment, newAccount("shared@parks.test", "GovPw123"))

			result, err := service.Login(ctx, auth.LoginDTO{Email: "shared@parks.test", Password: "AdminPw1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Role).To(Equal(auth.RoleAdmin))
		})

		It("does not fall through to later tables on a wrong password", func() {
			repo.add(auth.RoleAdmin, newAccount("shared@parks.test", "AdminPw1"))
			repo.add(auth.RoleGovernment, newAccount("shared@parks.test", "GovPw123"))

			_, err := service.Login(ctx, auth.LoginDTO{Email: "shared@parks.test", Password: "GovPw123"})

			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("rejects unknown emails with invalid credentials", func() {
			_, err := service.Login(ctx, auth.LoginDTO{Email: "nobody@parks.test", Password: "Whatever1"})

			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("rejects missing fields", func() {
			_, err := service.Login(ctx, auth.LoginDTO{Email: "", Password: ""})

			Expect(err).To(HaveOccurred())
		})

		It("records the login time", func() {
			repo.add(auth.RoleAuditor, newAccount("auditor@parks.test", "Sekret99"))

			result, err := service.Login(ctx, auth.LoginDTO{Email: "auditor@parks.test", Password: "Sekret99"})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastLoginSet).To(HaveKey(result.User.ID))
			Expect(result.User.LastLogin).NotTo(BeNil())
		})
	})

	Describe("LoginAs", func() {
		It("only checks the requested role table", func() {
			repo.add(auth.RoleVisitor, newAccount("visitor@mail.test", "Sekret99"))

			_, err := service.LoginAs(ctx, auth.RoleAdmin, auth.LoginDTO{Email: "visitor@mail.test", Password: "Sekret99"})
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))

			result, err := service.LoginAs(ctx, auth.RoleVisitor, auth.LoginDTO{Email: "visitor@mail.test", Password: "Sekret99"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Role).To(Equal(auth.RoleVisitor))
		})
	})

	Describe("legacy hash upgrade", func() {
		It("accepts a bare SHA-256 hash and rewrites it as bcrypt", func() {
			account := &auth.Account{
				Email: "legacy@parks.test",
				// sha256("Sekret99")
				PasswordHash: "be695972c375b8be7935d4df021741727f3f4e35a63a6135c544fa60bfc1236a",
			}
			repo.add(auth.RoleParkStaff, account)

			result, err := service.Login(ctx, auth.LoginDTO{Email: "legacy@parks.test", Password: "Sekret99"})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.rehashedTo).To(HaveKey(result.User.ID))
			Expect(repo.rehashedTo[result.User.ID]).To(HavePrefix("$2a$"))
		})
	})

	Describe("RegisterVisitor", func() {
		It("creates a visitor with a bcrypt hash", func() {
			account, err := service.RegisterVisitor(ctx, auth.RegisterDTO{
				FirstName: "Ada",
				LastName:  "Visitor",
				Email:     "ada@mail.test",
				Password:  "Sekret99",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(account.PasswordHash).To(HavePrefix("$2a$"))
			ok, needsRehash := auth.VerifyPassword(account.PasswordHash, "Sekret99")
			Expect(ok).To(BeTrue())
			Expect(needsRehash).To(BeFalse())
		})

		It("rejects duplicate emails", func() {
			repo.add(auth.RoleVisitor, newAccount("taken@mail.test", "Sekret99"))

			_, err := service.RegisterVisitor(ctx, auth.RegisterDTO{
				FirstName: "Ada",
				LastName:  "Visitor",
				Email:     "taken@mail.test",
				Password:  "Sekret99",
			})

			Expect(err).To(MatchError(auth.ErrEmailExists))
		})

		It("enforces the password policy", func() {
			for _, weak := range []string{"short1A", "alllowercase9", "NoDigitsHere"} {
				_, err := service.RegisterVisitor(ctx, auth.RegisterDTO{
					FirstName: "Ada",
					LastName:  "Visitor",
					Email:     "weak@mail.test",
					Password:  weak,
				})
				Expect(err).To(HaveOccurred(), "password %q should be rejected", weak)
			}
			Expect(repo.createdVisitors).To(BeEmpty())
		})
	})

	Describe("ValidateAccessToken", func() {
		It("round-trips claims for a valid token", func() {
			repo.add(auth.RoleGovernment, newAccount("gov@parks.test", "Sekret99"))

			result, err := service.Login(ctx, auth.LoginDTO{Email: "gov@parks.test", Password: "Sekret99"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Email).To(Equal("gov@parks.test"))
			Expect(claims.Role).To(Equal(string(auth.RoleGovernment)))
		})

		It("rejects tokens signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-entirely-padded-00", time.Hour)
			token, err := other.GenerateToken(1, "gov@parks.test", auth.RoleGovernment)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("rejects expired tokens", func() {
			expired := auth.NewJWTTokenGenerator("test-secret-that-is-long-enough-0", time.Nanosecond)
			token, err := expired.GenerateToken(1, "gov@parks.test", auth.RoleGovernment)
			Expect(err).NotTo(HaveOccurred())

			time.Sleep(5 * time.Millisecond)
			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
		})
	})
})
