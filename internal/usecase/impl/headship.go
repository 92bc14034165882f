// Package impl contains the implementations of the engine's usecases.
package impl

import (
	"context"

	"hokhau/internal/domain/entity"
	"hokhau/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HeadshipChecker inspects a household's member roster to enforce the
// exactly-one-head invariant. It only ever sees state as of its own
// most recent read; concurrent operators racing on the same household
// are not serialized here.
type HeadshipChecker struct {
	citizenRepo repository.CitizenRepository
}

// NewHeadshipChecker is the constructor for HeadshipChecker.
func NewHeadshipChecker(citizenRepo repository.CitizenRepository) *HeadshipChecker {
	return &HeadshipChecker{citizenRepo: citizenRepo}
}

// CurrentHead returns the household member holding the head slot, or
// nil when the slot is vacant.
func (h *HeadshipChecker) CurrentHead(ctx context.Context, householdID uuid.UUID) (*entity.Citizen, error) {
	roster, err := h.citizenRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household roster")
	}

	for _, member := range roster {
		if member.IsHead() {
			return member, nil
		}
	}

	return nil, nil
}

// CanAssignHead reports whether the head slot of the household is free,
// ignoring the excluded citizen (used during edits of the current head).
func (h *HeadshipChecker) CanAssignHead(ctx context.Context, householdID, excluding uuid.UUID) (bool, error) {
	head, err := h.CurrentHead(ctx, householdID)
	if err != nil {
		return false, err
	}

	return head == nil || head.ID == excluding, nil
}
