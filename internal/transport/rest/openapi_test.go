package rest_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/parkconserve/park-management/internal/transport/rest"
)

func TestRestTransport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Transport Suite")
}

// concretePath turns an OpenAPI path template into a routable URL by
// substituting placeholder values for every parameter.
func concretePath(template string) string {
	out := template
	for strings.Contains(out, "{") {
		start := strings.Index(out, "{")
		end := strings.Index(out, "}")
		out = out[:start] + "1" + out[end+1:]
	}
	return out
}

var _ = Describe("OpenAPI contract", func() {
	var (
		doc    *openapi3.T
		router *chi.Mux
	)

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())

		router = chi.NewRouter()
		rest.RegisterAllRoutes(router, nil, rest.Handlers{}, nil, "*", "uploads", slog.Default())
	})

	It("publishes a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("mounts a route for every documented operation", func() {
		for template, item := range doc.Paths.Map() {
			path := concretePath(template)
			for method := range item.Operations() {
				rctx := chi.NewRouteContext()
				matched := router.Match(rctx, method, path)
				Expect(matched).To(BeTrue(), "no route for %s %s", method, template)
			}
		}
	})
})
