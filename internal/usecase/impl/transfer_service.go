package impl

import (
	"context"
	"log/slog"
	"time"

	"hokhau/config"
	deliverycontext "hokhau/internal/delivery/context"
	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/metrics"
	"hokhau/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultProposalTTL = 10 * time.Minute

// transferService implements the TransferUsecase interface: Operation C
// of the orchestrator. A transfer that would empty the source household
// is parked behind an explicit confirmation because committing it
// cascade-deletes the source; everything else executes immediately.
type transferService struct {
	citizenRepo   repository.CitizenRepository
	householdRepo repository.HouseholdRepository
	headship      *HeadshipChecker
	proposals     *proposalStore
	engineMetrics *metrics.Engine
	logger        *slog.Logger
	now           func() time.Time
}

// TransferServiceParams holds dependencies for transferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	CitizenRepo   repository.CitizenRepository
	HouseholdRepo repository.HouseholdRepository
	Headship      *HeadshipChecker
	EngineMetrics *metrics.Engine
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	ttl := defaultProposalTTL
	if params.Config != nil && params.Config.Registry != nil && params.Config.Registry.TransferProposalTTL > 0 {
		ttl = params.Config.Registry.TransferProposalTTL
	}

	return &transferService{
		citizenRepo:   params.CitizenRepo,
		householdRepo: params.HouseholdRepo,
		headship:      params.Headship,
		proposals:     newProposalStore(ttl),
		engineMetrics: params.EngineMetrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Transfer moves a citizen to a different household, or parks the move
// behind a proposal when the citizen is the last non-deceased member of
// the source household.
func (srv *transferService) Transfer(ctx context.Context, input *usecase.TransferInput) (*usecase.TransferOutput, error) {
	started := srv.now()
	defer func() {
		srv.engineMetrics.ObserveOperation("transfer_citizen", srv.now().Sub(started).Seconds())
	}()

	citizen, remaining, err := srv.loadTransferState(ctx, input)
	if err != nil {
		return nil, err
	}

	if remaining == 0 {
		proposal := srv.proposals.put(*input, true)
		srv.log(ctx).Info("Last-member transfer proposed, awaiting confirmation",
			slog.Any("citizenID", input.CitizenID),
			slog.Any("proposalID", proposal.ID))

		return &usecase.TransferOutput{Executed: false, Proposal: proposal}, nil
	}

	return srv.executeTransfer(ctx, input, citizen, remaining)
}

// ConfirmTransfer commits a previously proposed last-member transfer.
// The source roster is re-read at confirmation time since it may have
// changed while the proposal was pending.
func (srv *transferService) ConfirmTransfer(ctx context.Context, proposalID uuid.UUID) (*usecase.TransferOutput, error) {
	proposal, found, expired := srv.proposals.take(proposalID)
	if !found {
		return nil, domainerrors.ErrProposalNotFound
	}
	if expired {
		return nil, domainerrors.ErrProposalExpired
	}

	input := proposal.Input
	citizen, remaining, err := srv.loadTransferState(ctx, &input)
	if err != nil {
		return nil, err
	}

	return srv.executeTransfer(ctx, &input, citizen, remaining)
}

// loadTransferState loads the citizen and destination household and
// computes the count of non-deceased source members besides the
// citizen. The destination must exist and differ from the source.
func (srv *transferService) loadTransferState(ctx context.Context, input *usecase.TransferInput) (*entity.Citizen, int, error) {
	citizen, err := srv.citizenRepo.FindByID(ctx, input.CitizenID)
	if err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return nil, 0, domainerrors.ErrCitizenNotFound
		}

		return nil, 0, errors.Wrap(err, "failed to find citizen")
	}

	if citizen.HouseholdID == input.DestinationHouseholdID {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			"citizen already belongs to the destination household")
	}

	if _, err := srv.householdRepo.FindByID(ctx, input.DestinationHouseholdID); err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, 0, domainerrors.ErrHouseholdNotFound
		}

		return nil, 0, errors.Wrap(err, "failed to find destination household")
	}

	roster, err := srv.citizenRepo.ListByHousehold(ctx, citizen.HouseholdID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load source household roster")
	}

	remaining := 0
	for _, member := range roster {
		if member.ID != citizen.ID && !member.Deceased {
			remaining++
		}
	}

	return citizen, remaining, nil
}

// executeTransfer commits the move. Steps, strictly in order: validate
// destination headship, resolve the source successor when the head is
// leaving a non-empty household, update the citizen, promote the
// successor, and finally delete the emptied source household. The last
// step is deliberately not compensated: a failed cleanup leaves an
// orphaned empty household rather than rolling back the citizen.
func (srv *transferService) executeTransfer(ctx context.Context, input *usecase.TransferInput, citizen *entity.Citizen, remaining int) (*usecase.TransferOutput, error) {
	sourceHouseholdID := citizen.HouseholdID

	newRelationship := citizen.RelationshipToHead
	if input.NewRelationship != "" {
		if !input.NewRelationship.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"unknown relationship " + string(input.NewRelationship))
		}
		newRelationship = input.NewRelationship
	}

	if newRelationship == entity.RelationshipHead {
		free, err := srv.headship.CanAssignHead(ctx, input.DestinationHouseholdID, citizen.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, domainerrors.ErrHeadAlreadyAssigned
		}
	}

	var successor *entity.Citizen
	if citizen.IsHead() && remaining > 0 {
		if input.SuccessorID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"a successor must be nominated when the head leaves the household")
		}
		member, err := srv.findSourceMember(ctx, sourceHouseholdID, citizen.ID, *input.SuccessorID)
		if err != nil {
			return nil, err
		}
		successor = member
	}

	moved := *citizen
	moved.HouseholdID = input.DestinationHouseholdID
	moved.RelationshipToHead = newRelationship
	if err := srv.citizenRepo.Update(ctx, &moved); err != nil {
		return nil, errors.Wrapf(err, "saga step %s failed", domainerrors.StepTransferCitizen)
	}

	var warnings []string

	if successor != nil {
		promoted := *successor
		promoted.RelationshipToHead = entity.RelationshipHead
		if err := srv.citizenRepo.Update(ctx, &promoted); err != nil {
			srv.engineMetrics.PartialSuccessions.Inc()
			srv.log(ctx).Error("Successor promotion failed after transfer committed",
				slog.Any("householdID", sourceHouseholdID),
				slog.Any("successorID", successor.ID),
				slog.Any("error", err))

			return nil, &domainerrors.PartialSuccessionFailure{
				HouseholdID: sourceHouseholdID,
				SuccessorID: successor.ID,
				Cause:       err,
			}
		}
		warnings = syncHeadName(ctx, srv.householdRepo, srv.engineMetrics, srv.log(ctx),
			sourceHouseholdID, successor.FullName, warnings)
	}

	if remaining == 0 {
		if err := srv.householdRepo.Delete(ctx, sourceHouseholdID); err != nil {
			srv.engineMetrics.OrphanedHouseholds.Inc()
			srv.log(ctx).Error("Empty source household cleanup failed",
				slog.String("step", domainerrors.StepDeleteEmptySource),
				slog.Any("householdID", sourceHouseholdID), slog.Any("error", err))
			warnings = append(warnings,
				"the emptied source household could not be deleted and needs later cleanup: "+err.Error())
		}
	}

	if newRelationship == entity.RelationshipHead {
		warnings = syncHeadName(ctx, srv.householdRepo, srv.engineMetrics, srv.log(ctx),
			input.DestinationHouseholdID, moved.FullName, warnings)
	}

	srv.engineMetrics.TransfersExecuted.Inc()
	srv.log(ctx).Info("Citizen transferred",
		slog.Any("citizenID", moved.ID),
		slog.Any("from", sourceHouseholdID),
		slog.Any("to", moved.HouseholdID))

	return &usecase.TransferOutput{
		Executed: true,
		Citizen:  usecase.NewCitizenView(&moved, srv.now()),
		Warnings: warnings,
	}, nil
}

// findSourceMember resolves a nominated successor within the source
// household roster.
func (srv *transferService) findSourceMember(ctx context.Context, householdID, excluding, successorID uuid.UUID) (*entity.Citizen, error) {
	roster, err := srv.citizenRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load source household roster")
	}

	for _, member := range roster {
		if member.ID == successorID && member.ID != excluding {
			return member, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails(
		"nominated successor is not a member of the source household")
}
