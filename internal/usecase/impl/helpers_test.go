package impl

import (
	"io"
	"log/slog"
	"time"

	"hokhau/config"
	"hokhau/internal/domain/entity"
	"hokhau/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMetrics builds an engine metrics set on an isolated registry so
// parallel tests never collide on collector registration.
func newTestMetrics() *metrics.Engine {
	return metrics.New(prometheus.NewRegistry())
}

func newTestConfig() *config.Config {
	return &config.Config{
		Registry: &config.RegistryConfig{
			TransferProposalTTL:  time.Minute,
			DeathReasonMinLength: 3,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// testCitizen builds an adult citizen whose document satisfies the age
// policy, so edits that do not touch the document pass validation.
func testCitizen(householdID uuid.UUID, name string, rel entity.Relationship) *entity.Citizen {
	return &entity.Citizen{
		ID:          uuid.New(),
		HouseholdID: householdID,
		FullName:    name,
		BirthDate:   date(1980, 5, 20),
		IdentityDocument: &entity.IdentityDocument{
			Number:     "123456789",
			IssueDate:  date(2000, 6, 15),
			IssuePlace: "Ha Noi",
		},
		RelationshipToHead: rel,
	}
}

func strPtr(s string) *string { return &s }

func relPtr(r entity.Relationship) *entity.Relationship { return &r }
