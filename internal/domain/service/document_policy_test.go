package service

import (
	"testing"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validDocument(issue time.Time) *entity.IdentityDocument {
	return &entity.IdentityDocument{
		Number:     "012345678901",
		IssueDate:  issue,
		IssuePlace: "District Police Office No. 3",
	}
}

func assertPolicyViolation(t *testing.T, err error, fragment string) {
	t.Helper()
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "POLICY_VIOLATION", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), fragment)
}

func TestDocumentPolicy_UnderageWithoutDocument(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(2015, 4, 2)

	assert.NoError(t, p.Validate(birth, nil, now))
	// An all-empty block counts as absent.
	assert.NoError(t, p.Validate(birth, &entity.IdentityDocument{}, now))
}

func TestDocumentPolicy_UnderageWithFieldsRejected(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(2015, 4, 2)

	err := p.Validate(birth, &entity.IdentityDocument{
		Number:     "123456789",
		IssuePlace: "somewhere",
	}, now)

	assertPolicyViolation(t, err, "number, issuePlace")
}

func TestDocumentPolicy_AdultRequiresDocument(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(1990, 1, 1)

	assertPolicyViolation(t, p.Validate(birth, nil, now), "must carry an identity document")
}

func TestDocumentPolicy_NumberPattern(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(1990, 1, 1)

	for _, number := range []string{"12345678", "1234567890123", "12345678a", ""} {
		doc := validDocument(date(2020, 1, 1))
		doc.Number = number
		assertPolicyViolation(t, p.Validate(birth, doc, now), "9 to 12 digits")
	}

	for _, number := range []string{"123456789", "123456789012"} {
		doc := validDocument(date(2020, 1, 1))
		doc.Number = number
		assert.NoError(t, p.Validate(birth, doc, now))
	}
}

func TestDocumentPolicy_IssueDateBoundaryAtFourteen(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	// Citizen turns exactly fourteen today.
	birth := date(2012, 9, 1)

	// One day before the fourteenth birthday: too early. The details
	// name the earliest acceptable date in canonical form.
	early := validDocument(date(2026, 8, 31))
	assertPolicyViolation(t, p.Validate(birth, early, now), "14th birthday")
	assertPolicyViolation(t, p.Validate(birth, early, now), "earliest 2026-09-01")

	// On the birthday itself: accepted.
	onTime := validDocument(date(2026, 9, 1))
	assert.NoError(t, p.Validate(birth, onTime, now))
}

func TestDocumentPolicy_IssueDateInFuture(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(1990, 1, 1)

	doc := validDocument(date(2026, 9, 2))
	assertPolicyViolation(t, p.Validate(birth, doc, now), "future")
}

func TestDocumentPolicy_IssuePlaceBlank(t *testing.T) {
	p := NewDocumentPolicy()
	now := date(2026, 9, 1)
	birth := date(1990, 1, 1)

	doc := validDocument(date(2020, 1, 1))
	doc.IssuePlace = "   "
	assertPolicyViolation(t, p.Validate(birth, doc, now), "issue place")
}
