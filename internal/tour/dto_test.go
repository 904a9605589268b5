package tour_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/tour"
)

func TestTour(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Tour Suite")
}

var _ = Describe("BookTourDTO validation", func() {
	var dto tour.BookTourDTO

	BeforeEach(func() {
		dto = tour.BookTourDTO{
			ParkName:  "Yankari National Park",
			TourName:  "Bird Watching",
			Date:      time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
			Time:      "09:30",
			Guests:    2,
			Amount:    float64(2 * tour.PricePerGuest),
			FirstName: "Ada",
			LastName:  "Okafor",
			Email:     "ada@mail.test",
		}
	})

	It("accepts a well-formed booking and parses the date", func() {
		date, err := dto.Validate()

		Expect(err).NotTo(HaveOccurred())
		Expect(date.Format("2006-01-02")).To(Equal(dto.Date))
	})

	It("rejects an unknown tour purpose", func() {
		dto.TourName = "Moonlight Safari"

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})

	It("rejects guest counts outside 1 to 20", func() {
		for _, guests := range []int{0, 21, -3} {
			dto.Guests = guests
			dto.Amount = float64(guests * tour.PricePerGuest)

			_, err := dto.Validate()
			Expect(err).To(HaveOccurred(), "guest count %d should be rejected", guests)
		}
	})

	It("requires the amount to equal guests times the flat rate", func() {
		dto.Amount = float64(dto.Guests*tour.PricePerGuest) + 1

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})

	It("rejects dates in the past", func() {
		dto.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed times", func() {
		dto.Time = "9:30 AM"

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})

	It("rejects missing contact details", func() {
		dto.Email = ""

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})

	It("rejects malformed email addresses", func() {
		dto.Email = "not-an-email"

		_, err := dto.Validate()
		Expect(err).To(HaveOccurred())
	})
})
