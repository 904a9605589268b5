package emergency_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/account"
	"github.com/parkconserve/park-management/internal/emergency"
)

func TestEmergency(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Emergency Suite")
}

type mockDirectory struct {
	parks map[int64]string
}

func (m *mockDirectory) ParkNameFor(role string, userID int64) (string, error) {
	if park, ok := m.parks[userID]; ok {
		return park, nil
	}
	return "", account.ErrParkNotFound
}

type mockRequestRepository struct {
	requests map[int64]*emergency.Request
	nextID   int64
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{
		requests: make(map[int64]*emergency.Request),
		nextID:   1,
	}
}

func (m *mockRequestRepository) Create(request *emergency.Request) error {
	request.ID = m.nextID
	m.nextID++
	request.CreatedAt = time.Now()
	m.requests[request.ID] = request
	return nil
}

func (m *mockRequestRepository) GetByID(id int64) (*emergency.Request, error) {
	if request, ok := m.requests[id]; ok {
		copied := *request
		return &copied, nil
	}
	return nil, emergency.ErrRequestNotFound
}

func (m *mockRequestRepository) ListByCreator(creatorID int64, parkName string) ([]*emergency.Request, error) {
	var out []*emergency.Request
	for _, request := range m.requests {
		if request.CreatedBy == creatorID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (m *mockRequestRepository) ListByStatus(status string) ([]*emergency.Request, error) {
	var out []*emergency.Request
	for _, request := range m.requests {
		if request.Status == status {
			out = append(out, request)
		}
	}
	return out, nil
}

func (m *mockRequestRepository) ListAll() ([]*emergency.Request, error) {
	var out []*emergency.Request
	for _, request := range m.requests {
		out = append(out, request)
	}
	return out, nil
}

func (m *mockRequestRepository) Update(request *emergency.Request) error {
	m.requests[request.ID] = request
	return nil
}

func (m *mockRequestRepository) Review(request *emergency.Request) error {
	current, ok := m.requests[request.ID]
	if !ok || current.Status != emergency.StatusPending {
		return emergency.ErrCannotModify
	}
	m.requests[request.ID] = request
	return nil
}

var _ = Describe("EmergencyService", func() {
	const (
		financeID    = int64(5)
		governmentID = int64(9)
	)

	var (
		repo    *mockRequestRepository
		service *emergency.Service
	)

	validDTO := emergency.CreateRequestDTO{
		Title:         "Flood damage repair",
		Description:   "Access road washed out by seasonal flooding",
		Amount:        15000,
		ParkName:      "Kainji Lake National Park",
		EmergencyType: "natural-disaster",
		Justification: "Rangers cannot reach the eastern sector without the road",
		Timeframe:     "2-weeks",
	}

	BeforeEach(func() {
		repo = newMockRequestRepository()
		directory := &mockDirectory{parks: map[int64]string{financeID: "Kainji Lake National Park"}}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = emergency.NewService(repo, directory, logger)
	})

	Describe("Create", func() {
		It("records a pending request for the officer", func() {
			request, err := service.Create(financeID, validDTO)

			Expect(err).NotTo(HaveOccurred())
			Expect(request.Status).To(Equal(emergency.StatusPending))
			Expect(request.CreatedBy).To(Equal(financeID))
		})

		It("rejects incomplete payloads", func() {
			dto := validDTO
			dto.Justification = ""

			_, err := service.Create(financeID, dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("hides other officers' requests behind not-found", func() {
			request, err := service.Create(financeID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(financeID+1, request.ID, validDTO)
			Expect(err).To(MatchError(emergency.ErrRequestNotFound))
		})

		It("refuses to edit a reviewed request", func() {
			request, err := service.Create(financeID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			repo.requests[request.ID].Status = emergency.StatusApproved

			_, err = service.Update(financeID, request.ID, validDTO)
			Expect(err).To(MatchError(emergency.ErrCannotModify))
		})
	})

	Describe("Review", func() {
		It("stamps reviewer, reason and review date", func() {
			request, err := service.Create(financeID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			reviewed, err := service.Review(governmentID, request.ID, emergency.ReviewDTO{
				Status: emergency.StatusApproved,
				Reason: "Road access is critical for ranger safety",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(reviewed.Status).To(Equal(emergency.StatusApproved))
			Expect(reviewed.Reason).NotTo(BeNil())
			Expect(reviewed.ReviewedBy).To(HaveValue(Equal(governmentID)))
			Expect(reviewed.ReviewedDate).NotTo(BeNil())
		})

		It("requires a substantive reason", func() {
			request, err := service.Create(financeID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Review(governmentID, request.ID, emergency.ReviewDTO{
				Status: emergency.StatusRejected,
				Reason: "no",
			})
			Expect(err).To(HaveOccurred())
		})

		It("only reviews pending requests", func() {
			request, err := service.Create(financeID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			dto := emergency.ReviewDTO{
				Status: emergency.StatusRejected,
				Reason: "Budget cycle already closed for this quarter",
			}
			_, err = service.Review(governmentID, request.ID, dto)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Review(governmentID, request.ID, dto)
			Expect(err).To(MatchError(emergency.ErrCannotModify))
		})
	})
})
