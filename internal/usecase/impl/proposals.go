package impl

import (
	"sync"
	"time"

	"hokhau/internal/usecase"

	"github.com/google/uuid"
)

// proposalStore parks last-member transfers between the propose and
// confirm phases. Proposals live in memory only; an unconfirmed
// proposal simply expires and nothing has been written to the store.
type proposalStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	proposals map[uuid.UUID]*usecase.TransferProposal
	now       func() time.Time
}

func newProposalStore(ttl time.Duration) *proposalStore {
	return &proposalStore{
		ttl:       ttl,
		proposals: make(map[uuid.UUID]*usecase.TransferProposal),
		now:       time.Now,
	}
}

// put parks a transfer and returns the proposal handed to the caller.
func (s *proposalStore) put(input usecase.TransferInput, lastMember bool) *usecase.TransferProposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal := &usecase.TransferProposal{
		ID:         uuid.New(),
		Input:      input,
		LastMember: lastMember,
		ExpiresAt:  s.now().Add(s.ttl),
	}
	s.proposals[proposal.ID] = proposal
	s.evictExpiredLocked()

	return proposal
}

// take removes and returns the proposal. The second return is false
// when the proposal is unknown; an expired proposal is reported via the
// third return and is removed as well.
func (s *proposalStore) take(id uuid.UUID) (proposal *usecase.TransferProposal, found, expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, found = s.proposals[id]
	if !found {
		return nil, false, false
	}
	delete(s.proposals, id)

	if s.now().After(proposal.ExpiresAt) {
		return nil, true, true
	}

	return proposal, true, false
}

func (s *proposalStore) evictExpiredLocked() {
	now := s.now()
	for id, proposal := range s.proposals {
		if now.After(proposal.ExpiresAt) {
			delete(s.proposals, id)
		}
	}
}
