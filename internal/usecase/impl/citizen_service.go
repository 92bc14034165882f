package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hokhau/config"
	deliverycontext "hokhau/internal/delivery/context"
	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/domain/service"
	"hokhau/internal/infra/metrics"
	"hokhau/internal/usecase"
	"hokhau/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDeathReasonMinLength = 3

// citizenService implements the CitizenUsecase interface. It owns the
// headship-succession saga (Operation B), the best-effort head-name
// projection (Operation D), residency-window registration, and the
// one-way death declaration.
type citizenService struct {
	citizenRepo       repository.CitizenRepository
	householdRepo     repository.HouseholdRepository
	headship          *HeadshipChecker
	policy            *service.DocumentPolicy
	engineMetrics     *metrics.Engine
	deathReasonMinLen int
	logger            *slog.Logger
	now               func() time.Time
}

// CitizenServiceParams holds dependencies for citizenService, injected by Fx.
type CitizenServiceParams struct {
	fx.In

	CitizenRepo   repository.CitizenRepository
	HouseholdRepo repository.HouseholdRepository
	Headship      *HeadshipChecker
	Policy        *service.DocumentPolicy
	EngineMetrics *metrics.Engine
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCitizenService is the constructor for citizenService.
func NewCitizenService(params CitizenServiceParams) usecase.CitizenUsecase {
	deathReasonMinLen := defaultDeathReasonMinLength
	if params.Config != nil && params.Config.Registry != nil && params.Config.Registry.DeathReasonMinLength > 0 {
		deathReasonMinLen = params.Config.Registry.DeathReasonMinLength
	}

	return &citizenService{
		citizenRepo:       params.CitizenRepo,
		householdRepo:     params.HouseholdRepo,
		headship:          params.Headship,
		policy:            params.Policy,
		engineMetrics:     params.EngineMetrics,
		deathReasonMinLen: deathReasonMinLen,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *citizenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCitizen retrieves a citizen with their residency status derived at
// read time.
func (srv *citizenService) GetCitizen(ctx context.Context, id uuid.UUID) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewCitizenView(citizen, srv.now()), nil
}

// UpdateCitizen applies a profile edit.
//
// The document policy and headship invariant are checked before any
// store write. When the current head gives up headship the nominated
// successor is promoted immediately after the edit commits; the two
// writes are not atomic at the store, so a failed promotion surfaces as
// PartialSuccessionFailure and PromoteToHead retries exactly that step.
func (srv *citizenService) UpdateCitizen(ctx context.Context, id uuid.UUID, input *usecase.UpdateCitizenInput) (*usecase.UpdateCitizenOutput, error) {
	started := srv.now()
	defer func() {
		srv.engineMetrics.ObserveOperation("update_citizen", srv.now().Sub(started).Seconds())
	}()

	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *citizen
	if err := srv.applyProfileEdit(&updated, input); err != nil {
		return nil, err
	}

	if err := srv.policy.Validate(updated.BirthDate, updated.IdentityDocument, srv.now()); err != nil {
		return nil, err
	}

	successor, err := srv.checkHeadshipChange(ctx, citizen, &updated, input)
	if err != nil {
		return nil, err
	}

	if err := srv.citizenRepo.Update(ctx, &updated); err != nil {
		return nil, errors.Wrapf(err, "saga step %s failed", domainerrors.StepUpdateCitizen)
	}

	var warnings []string

	if successor != nil {
		if err := srv.promoteSuccessor(ctx, &updated, successor); err != nil {
			return nil, err
		}
		warnings = srv.syncHeadName(ctx, updated.HouseholdID, successor.FullName, warnings)
	} else if updated.IsHead() && updated.FullName != citizen.FullName {
		// Operation D: the head's display name is a denormalized cache
		// on the household; refreshing it must never fail the edit.
		warnings = srv.syncHeadName(ctx, updated.HouseholdID, updated.FullName, warnings)
	}

	return &usecase.UpdateCitizenOutput{
		Citizen:  usecase.NewCitizenView(&updated, srv.now()),
		Warnings: warnings,
	}, nil
}

// applyProfileEdit folds the nil-able input fields into the copy.
func (srv *citizenService) applyProfileEdit(citizen *entity.Citizen, input *usecase.UpdateCitizenInput) error {
	if input.FullName != nil {
		if strings.TrimSpace(*input.FullName) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("full name cannot be blank")
		}
		citizen.FullName = *input.FullName
	}
	if input.BirthDate != nil {
		birthDate, err := util.ParseDate(*input.BirthDate)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("birth date: " + err.Error())
		}
		citizen.BirthDate = birthDate
	}
	if input.Gender != nil {
		citizen.Gender = *input.Gender
	}
	if input.Ethnicity != nil {
		citizen.Ethnicity = *input.Ethnicity
	}
	if input.Nationality != nil {
		citizen.Nationality = *input.Nationality
	}
	if input.Occupation != nil {
		citizen.Occupation = *input.Occupation
	}

	if input.ClearDocument {
		citizen.IdentityDocument = nil
	} else if input.IdentityDocument != nil {
		doc, err := buildDocument(input.IdentityDocument)
		if err != nil {
			return err
		}
		citizen.IdentityDocument = doc
	}

	if input.RelationshipToHead != nil {
		if !input.RelationshipToHead.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails(
				"unknown relationship " + string(*input.RelationshipToHead))
		}
		citizen.RelationshipToHead = *input.RelationshipToHead
	}

	return nil
}

// checkHeadshipChange enforces the headship invariant for the edit and
// resolves the nominated successor when headship is being given up.
func (srv *citizenService) checkHeadshipChange(ctx context.Context, before, after *entity.Citizen, input *usecase.UpdateCitizenInput) (*entity.Citizen, error) {
	if before.IsHead() && !after.IsHead() {
		roster, err := srv.citizenRepo.ListByHousehold(ctx, before.HouseholdID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load household roster")
		}

		otherMembers := make([]*entity.Citizen, 0, len(roster))
		for _, member := range roster {
			if member.ID != before.ID {
				otherMembers = append(otherMembers, member)
			}
		}
		if len(otherMembers) == 0 {
			return nil, domainerrors.ErrNoSuccessorAvailable
		}
		if input.SuccessorID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"a successor must be nominated when the head gives up headship")
		}
		for _, member := range otherMembers {
			if member.ID == *input.SuccessorID {
				return member, nil
			}
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"nominated successor is not a member of the household")
	}

	if !before.IsHead() && after.IsHead() {
		free, err := srv.headship.CanAssignHead(ctx, before.HouseholdID, before.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, domainerrors.ErrHeadAlreadyAssigned
		}
	}

	return nil, nil
}

// promoteSuccessor runs step 5 of the succession saga. The edit has
// already committed, so a failure here leaves the household headless
// and is reported as a partial failure the caller can retry.
func (srv *citizenService) promoteSuccessor(ctx context.Context, edited, successor *entity.Citizen) error {
	promoted := *successor
	promoted.RelationshipToHead = entity.RelationshipHead

	if err := srv.citizenRepo.Update(ctx, &promoted); err != nil {
		srv.engineMetrics.PartialSuccessions.Inc()
		srv.log(ctx).Error("Successor promotion failed after edit committed",
			slog.Any("householdID", edited.HouseholdID),
			slog.Any("successorID", successor.ID),
			slog.Any("error", err))

		return &domainerrors.PartialSuccessionFailure{
			HouseholdID: edited.HouseholdID,
			SuccessorID: successor.ID,
			Cause:       err,
		}
	}

	return nil
}

// syncHeadName runs Operation D against this service's dependencies.
func (srv *citizenService) syncHeadName(ctx context.Context, householdID uuid.UUID, headName string, warnings []string) []string {
	return syncHeadName(ctx, srv.householdRepo, srv.engineMetrics, srv.log(ctx), householdID, headName, warnings)
}

// PromoteToHead promotes a citizen to head of their household. It is
// the idempotent retry of an interrupted succession: promoting the
// current head succeeds without a write.
func (srv *citizenService) PromoteToHead(ctx context.Context, id uuid.UUID) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	if citizen.IsHead() {
		return usecase.NewCitizenView(citizen, srv.now()), nil
	}

	free, err := srv.headship.CanAssignHead(ctx, citizen.HouseholdID, citizen.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domainerrors.ErrHeadAlreadyAssigned
	}

	citizen.RelationshipToHead = entity.RelationshipHead
	if err := srv.citizenRepo.Update(ctx, citizen); err != nil {
		return nil, errors.Wrapf(err, "saga step %s failed", domainerrors.StepPromoteSuccessor)
	}

	srv.syncHeadName(ctx, citizen.HouseholdID, citizen.FullName, nil)

	return usecase.NewCitizenView(citizen, srv.now()), nil
}

// DeleteCitizen removes a citizen. When the deletion empties the
// household the household is deleted as a cascade; a failed cascade is
// reported but the citizen deletion stands, favoring citizen-state
// correctness over household cleanliness.
func (srv *citizenService) DeleteCitizen(ctx context.Context, id uuid.UUID) (*usecase.DeleteCitizenOutput, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	roster, err := srv.citizenRepo.ListByHousehold(ctx, citizen.HouseholdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household roster")
	}

	remaining := 0
	for _, member := range roster {
		if member.ID != citizen.ID {
			remaining++
		}
	}

	if err := srv.citizenRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete citizen")
	}

	output := &usecase.DeleteCitizenOutput{}
	if remaining == 0 {
		if err := srv.householdRepo.Delete(ctx, citizen.HouseholdID); err != nil {
			srv.engineMetrics.OrphanedHouseholds.Inc()
			srv.log(ctx).Error("Empty household cleanup failed",
				slog.String("step", domainerrors.StepDeleteEmptySource),
				slog.Any("householdID", citizen.HouseholdID), slog.Any("error", err))
			output.Warnings = append(output.Warnings,
				"the emptied household could not be deleted and needs later cleanup: "+err.Error())
		} else {
			output.HouseholdDeleted = true
		}
	}

	return output, nil
}

// RegisterTemporaryResidence registers a temporary-residence window.
func (srv *citizenService) RegisterTemporaryResidence(ctx context.Context, id uuid.UUID, window *usecase.WindowInput) (*usecase.CitizenView, error) {
	return srv.registerWindow(ctx, id, window, false)
}

// RegisterTemporaryAbsence registers a temporary-absence window.
func (srv *citizenService) RegisterTemporaryAbsence(ctx context.Context, id uuid.UUID, window *usecase.WindowInput) (*usecase.CitizenView, error) {
	return srv.registerWindow(ctx, id, window, true)
}

func (srv *citizenService) registerWindow(ctx context.Context, id uuid.UUID, input *usecase.WindowInput, absence bool) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}
	if citizen.Deceased {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"residency windows cannot be registered for a deceased citizen")
	}

	window, err := buildWindow(input)
	if err != nil {
		return nil, err
	}

	// Mutual exclusion of the two windows is not enforced; an overlap
	// is flagged so operators can spot it.
	now := srv.now()
	if absence && citizen.TemporaryResidence.Contains(now) {
		srv.log(ctx).Warn("Registering absence while a residence window is active",
			slog.Any("citizenID", id))
	}
	if !absence && citizen.TemporaryAbsence.Contains(now) {
		srv.log(ctx).Warn("Registering residence while an absence window is active",
			slog.Any("citizenID", id))
	}

	var updated *entity.Citizen
	if absence {
		updated, err = srv.citizenRepo.RegisterTemporaryAbsence(ctx, id, window)
	} else {
		updated, err = srv.citizenRepo.RegisterTemporaryResidence(ctx, id, window)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to register residency window")
	}

	return usecase.NewCitizenView(updated, srv.now()), nil
}

// CancelTemporaryResidence clears the temporary-residence window.
func (srv *citizenService) CancelTemporaryResidence(ctx context.Context, id uuid.UUID) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.citizenRepo.CancelTemporaryResidence(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to cancel temporary residence")
	}
	citizen.TemporaryResidence = nil

	return usecase.NewCitizenView(citizen, srv.now()), nil
}

// CancelTemporaryAbsence clears the temporary-absence window.
func (srv *citizenService) CancelTemporaryAbsence(ctx context.Context, id uuid.UUID) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.citizenRepo.CancelTemporaryAbsence(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to cancel temporary absence")
	}
	citizen.TemporaryAbsence = nil

	return usecase.NewCitizenView(citizen, srv.now()), nil
}

// DeclareDeath records the one-way death declaration. Declaring death
// on an already-deceased citizen is a no-op success so retries after a
// lost response cannot fail.
func (srv *citizenService) DeclareDeath(ctx context.Context, id uuid.UUID, reason string) (*usecase.CitizenView, error) {
	citizen, err := srv.findCitizen(ctx, id)
	if err != nil {
		return nil, err
	}

	if citizen.Deceased {
		return usecase.NewCitizenView(citizen, srv.now()), nil
	}

	if len(strings.TrimSpace(reason)) < srv.deathReasonMinLen {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"a death declaration requires a non-empty reason")
	}

	updated, err := srv.citizenRepo.DeclareDeath(ctx, id, strings.TrimSpace(reason))
	if err != nil {
		return nil, errors.Wrap(err, "failed to declare death")
	}

	srv.log(ctx).Info("Death declared", slog.Any("citizenID", id))

	return usecase.NewCitizenView(updated, srv.now()), nil
}

// findCitizen loads a citizen, translating the repository sentinel into
// the domain error.
func (srv *citizenService) findCitizen(ctx context.Context, id uuid.UUID) (*entity.Citizen, error) {
	citizen, err := srv.citizenRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCitizenNotFound) {
			return nil, domainerrors.ErrCitizenNotFound
		}

		return nil, errors.Wrap(err, "failed to find citizen")
	}

	return citizen, nil
}

// buildWindow validates and normalizes a window registration.
func buildWindow(input *usecase.WindowInput) (*entity.ResidencyWindow, error) {
	from, err := util.ParseDate(input.From)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from: " + err.Error())
	}

	window := &entity.ResidencyWindow{From: from, Reason: strings.TrimSpace(input.Reason)}
	if window.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a reason is required")
	}

	if strings.TrimSpace(input.To) != "" {
		to, err := util.ParseDate(input.To)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("to: " + err.Error())
		}
		if to.Before(from) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("window ends before it starts")
		}
		window.To = &to
	}

	return window, nil
}
