package fundrequest_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/account"
	"github.com/parkconserve/park-management/internal/fundrequest"
)

func TestFundRequest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FundRequest Suite")
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

type mockFundRequestRepository struct {
	requests map[int64]*fundrequest.FundRequest
	nextID   int64
}

func newMockFundRequestRepository() *mockFundRequestRepository {
	return &mockFundRequestRepository{
		requests: make(map[int64]*fundrequest.FundRequest),
		nextID:   1,
	}
}

func (m *mockFundRequestRepository) Create(request *fundrequest.FundRequest) error {
	request.ID = m.nextID
	m.nextID++
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	m.requests[request.ID] = request
	return nil
}

func (m *mockFundRequestRepository) GetByID(id int64) (*fundrequest.FundRequest, error) {
	if request, ok := m.requests[id]; ok {
		return request, nil
	}
	return nil, fundrequest.ErrFundRequestNotFound
}

func (m *mockFundRequestRepository) ListByPark(parkName, status string) ([]*fundrequest.FundRequest, error) {
	var out []*fundrequest.FundRequest
	for _, request := range m.requests {
		if request.ParkName != parkName {
			continue
		}
		if status != "" && request.Status != status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (m *mockFundRequestRepository) ListByParkWithStaff(parkName, status string) ([]*fundrequest.FundRequestWithStaff, error) {
	base, _ := m.ListByPark(parkName, status)
	out := make([]*fundrequest.FundRequestWithStaff, len(base))
	for i, request := range base {
		out[i] = &fundrequest.FundRequestWithStaff{FundRequest: *request}
	}
	return out, nil
}

func (m *mockFundRequestRepository) Update(request *fundrequest.FundRequest) error {
	m.requests[request.ID] = request
	return nil
}

func (m *mockFundRequestRepository) UpdateStatusScoped(id int64, parkName, status string) (bool, error) {
	request, ok := m.requests[id]
	if !ok || request.ParkName != parkName || request.Status != fundrequest.StatusPending {
		return false, nil
	}
	request.Status = status
	return true, nil
}

func (m *mockFundRequestRepository) DeleteScoped(id, createdBy int64) (bool, error) {
	request, ok := m.requests[id]
	if !ok || request.CreatedBy != createdBy {
		return false, nil
	}
	delete(m.requests, id)
	return true, nil
}

func (m *mockFundRequestRepository) StatsByPark(parkName string) (*fundrequest.Stats, error) {
	stats := &fundrequest.Stats{}
	for _, request := range m.requests {
		if request.ParkName != parkName {
			continue
		}
		stats.TotalRequests++
		stats.TotalRequested += request.Amount
		switch request.Status {
		case fundrequest.StatusPending:
			stats.PendingCount++
		case fundrequest.StatusApproved:
			stats.ApprovedCount++
			stats.TotalApproved += request.Amount
		case fundrequest.StatusRejected:
			stats.RejectedCount++
		}
	}
	return stats, nil
}

var _ = Describe("FundRequestService", func() {
	const (
		staffID   = int64(10)
		officerID = int64(20)
	)

	var (
		repo    *mockFundRequestRepository
		service *fundrequest.Service
	)

	validDTO := fundrequest.CreateFundRequestDTO{
		Title:       "Ranger patrol equipment",
		Description: "Radios and first aid kits for the northern patrol route",
		Amount:      2500,
		Category:    "equipment",
		Urgency:     "high",
	}

	BeforeEach(func() {
		repo = newMockFundRequestRepository()
		directory := &mockDirectory{parks: map[int64]string{
			staffID:   "Yankari National Park",
			officerID: "Yankari National Park",
		}}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = fundrequest.NewService(repo, directory, logger)
	})

	Describe("Create", func() {
		It("stamps the request with the staff member's park and pending status", func() {
			request, err := service.Create(staffID, validDTO)

			Expect(err).NotTo(HaveOccurred())
			Expect(request.ParkName).To(Equal("Yankari National Park"))
			Expect(request.Status).To(Equal(fundrequest.StatusPending))
			Expect(request.CreatedBy).To(Equal(staffID))
		})

		It("fails when the staff member has no park on record", func() {
			_, err := service.Create(99, validDTO)

			Expect(err).To(HaveOccurred())
		})

		It("rejects non-positive amounts", func() {
			dto := validDTO
			dto.Amount = 0

			_, err := service.Create(staffID, dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("edits a pending request owned by the caller", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.Update(staffID, request.ID, fundrequest.UpdateFundRequestDTO{
				Title:       "Ranger patrol equipment (revised)",
				Description: request.Description,
				Amount:      3000,
				Category:    request.Category,
				Urgency:     "critical",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Amount).To(Equal(3000.0))
			Expect(updated.Urgency).To(Equal("critical"))
		})

		It("hides requests owned by someone else behind a not-found error", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(staffID+1, request.ID, fundrequest.UpdateFundRequestDTO(validDTO))

			Expect(err).To(MatchError(fundrequest.ErrFundRequestNotFound))
		})

		It("refuses to edit a decided request", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			repo.requests[request.ID].Status = fundrequest.StatusApproved

			_, err = service.Update(staffID, request.ID, fundrequest.UpdateFundRequestDTO(validDTO))

			Expect(err).To(MatchError(fundrequest.ErrCannotModify))
		})
	})

	Describe("Delete", func() {
		It("removes a pending request", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(staffID, request.ID)).To(Succeed())
			Expect(repo.requests).NotTo(HaveKey(request.ID))
		})

		It("refuses to delete a decided request", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			repo.requests[request.ID].Status = fundrequest.StatusRejected

			Expect(service.Delete(staffID, request.ID)).To(MatchError(fundrequest.ErrCannotModify))
		})
	})

	Describe("Decide", func() {
		It("approves a request in the officer's park", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Decide(officerID, request.ID, fundrequest.StatusApproved)).To(Succeed())
			Expect(repo.requests[request.ID].Status).To(Equal(fundrequest.StatusApproved))
		})

		It("rejects statuses outside approved/rejected", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Decide(officerID, request.ID, "pending")).To(MatchError(fundrequest.ErrInvalidStatus))
		})

		It("only decides pending requests", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Decide(officerID, request.ID, fundrequest.StatusApproved)).To(Succeed())

			err = service.Decide(officerID, request.ID, fundrequest.StatusRejected)

			Expect(err).To(MatchError(fundrequest.ErrCannotModify))
			Expect(repo.requests[request.ID].Status).To(Equal(fundrequest.StatusApproved))
		})

		It("reads a request outside the officer's park as not found", func() {
			request, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			repo.requests[request.ID].ParkName = "Old Oyo National Park"

			Expect(service.Decide(officerID, request.ID, fundrequest.StatusApproved)).
				To(MatchError(fundrequest.ErrFundRequestNotFound))
		})
	})

	Describe("StatsForStaff", func() {
		It("summarizes only the caller's park", func() {
			first, err := service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(staffID, validDTO)
			Expect(err).NotTo(HaveOccurred())
			repo.requests[first.ID].Status = fundrequest.StatusApproved

			stats, err := service.StatsForStaff(staffID)

			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalRequests).To(Equal(int64(2)))
			Expect(stats.ApprovedCount).To(Equal(int64(1)))
			Expect(stats.PendingCount).To(Equal(int64(1)))
			Expect(stats.TotalApproved).To(Equal(repo.requests[first.ID].Amount))
		})
	})
})
