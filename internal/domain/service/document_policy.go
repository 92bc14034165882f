// Package service contains domain services: stateless business rules
// that do not belong to a single entity.
package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/util"
)

// DocumentEligibilityAge is the age, in whole years, from which a
// citizen must carry an identity document. Below it the document block
// must be absent altogether.
const DocumentEligibilityAge = 14

var documentNumberPattern = regexp.MustCompile(`^[0-9]{9,12}$`)

// DocumentPolicy validates identity-document fields against the
// citizen's age. It runs at edit-submission time, before any store
// call, and never touches persisted state.
type DocumentPolicy struct{}

// NewDocumentPolicy is the constructor for DocumentPolicy.
func NewDocumentPolicy() *DocumentPolicy {
	return &DocumentPolicy{}
}

// Validate checks the candidate document against the age gate.
//
// Under the eligibility age the document must be wholly absent; any
// supplied sub-field rejects the edit, naming the offending fields.
// From the eligibility age on, all three sub-fields are required: the
// number must be 9-12 digits, the issue date must not be in the future
// and must be no earlier than the citizen's fourteenth birthday, and
// the issue place must be non-blank after trimming.
func (p *DocumentPolicy) Validate(birthDate time.Time, doc *entity.IdentityDocument, now time.Time) error {
	age := entity.AgeAt(birthDate, now)

	if age < DocumentEligibilityAge {
		if doc == nil {
			return nil
		}

		var offending []string
		if doc.Number != "" {
			offending = append(offending, "number")
		}
		if !doc.IssueDate.IsZero() {
			offending = append(offending, "issueDate")
		}
		if strings.TrimSpace(doc.IssuePlace) != "" {
			offending = append(offending, "issuePlace")
		}
		if len(offending) == 0 {
			// An empty document block on a minor is tolerated as absent.
			return nil
		}

		return domainerrors.ErrPolicyViolation.WithDetails(fmt.Sprintf(
			"citizen is under %d; identity document fields must be empty: %s",
			DocumentEligibilityAge, strings.Join(offending, ", ")))
	}

	if doc == nil {
		return domainerrors.ErrPolicyViolation.WithDetails(fmt.Sprintf(
			"citizens aged %d and over must carry an identity document", DocumentEligibilityAge))
	}

	if !documentNumberPattern.MatchString(doc.Number) {
		return domainerrors.ErrPolicyViolation.WithDetails(
			"document number must be 9 to 12 digits")
	}

	if doc.IssueDate.IsZero() {
		return domainerrors.ErrPolicyViolation.WithDetails("issue date is required")
	}

	earliestIssue := birthDate.AddDate(DocumentEligibilityAge, 0, 0)
	if dayBefore(doc.IssueDate, earliestIssue) {
		return domainerrors.ErrPolicyViolation.WithDetails(fmt.Sprintf(
			"issue date precedes the citizen's %dth birthday (earliest %s)",
			DocumentEligibilityAge, util.FormatDate(earliestIssue)))
	}
	if dayBefore(now, doc.IssueDate) {
		return domainerrors.ErrPolicyViolation.WithDetails("issue date is in the future")
	}

	if strings.TrimSpace(doc.IssuePlace) == "" {
		return domainerrors.ErrPolicyViolation.WithDetails("issue place is required")
	}

	return nil
}

// dayBefore compares two timestamps at calendar-date granularity.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}

	return ad < bd
}
