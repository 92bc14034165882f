package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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
	"golang.org/x/sync/errgroup"
)

// householdService implements the HouseholdUsecase interface. It owns
// the create-household saga: the store offers no transaction spanning
// the household and citizen aggregates, so the service sequences the
// two creates and compensates by deleting the household when the head
// cannot be created.
type householdService struct {
	householdRepo repository.HouseholdRepository
	citizenRepo   repository.CitizenRepository
	headship      *HeadshipChecker
	policy        *service.DocumentPolicy
	engineMetrics *metrics.Engine
	logger        *slog.Logger
	now           func() time.Time
}

// HouseholdServiceParams holds dependencies for householdService, injected by Fx.
type HouseholdServiceParams struct {
	fx.In

	HouseholdRepo repository.HouseholdRepository
	CitizenRepo   repository.CitizenRepository
	Headship      *HeadshipChecker
	Policy        *service.DocumentPolicy
	EngineMetrics *metrics.Engine
	Logger        *slog.Logger
}

// NewHouseholdService is the constructor for householdService.
func NewHouseholdService(params HouseholdServiceParams) usecase.HouseholdUsecase {
	return &householdService{
		householdRepo: params.HouseholdRepo,
		citizenRepo:   params.CitizenRepo,
		headship:      params.Headship,
		policy:        params.Policy,
		engineMetrics: params.EngineMetrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *householdService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHousehold runs the create-household saga.
//
// Step 1 creates the household, step 2 the head citizen referencing it.
// If step 2 fails the service issues exactly one compensating delete of
// the household and re-raises the original failure, so the system never
// keeps a household with zero members beyond the in-flight request.
func (srv *householdService) CreateHousehold(ctx context.Context, input *usecase.CreateHouseholdInput) (*usecase.CreateHouseholdOutput, error) {
	started := srv.now()
	defer func() {
		srv.engineMetrics.ObserveOperation("create_household", srv.now().Sub(started).Seconds())
	}()

	if strings.TrimSpace(input.RegistryNumber) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registry number is required")
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	head, err := srv.buildHeadCitizen(&input.Head)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating household with head",
		slog.String("registryNumber", input.RegistryNumber),
		slog.String("headName", head.FullName))

	household := &entity.Household{
		RegistryNumber: input.RegistryNumber,
		HeadName:       head.FullName,
		Address:        input.Address,
	}

	if err := srv.householdRepo.Create(ctx, household); err != nil {
		return nil, errors.Wrapf(err, "saga step %s failed", domainerrors.StepCreateHousehold)
	}

	head.HouseholdID = household.ID
	if err := srv.citizenRepo.Create(ctx, head); err != nil {
		return nil, srv.compensateHouseholdCreate(ctx, household.ID, err)
	}

	srv.engineMetrics.HouseholdsCreated.Inc()
	srv.log(ctx).Debug("Household created", slog.Any("householdID", household.ID), slog.Any("headID", head.ID))

	return &usecase.CreateHouseholdOutput{
		Household: household,
		Head:      usecase.NewCitizenView(head, srv.now()),
	}, nil
}

// compensateHouseholdCreate deletes the half-created household after a
// failed head creation and re-raises the original failure. A failed
// compensation is surfaced as CompensationFailed carrying both errors.
func (srv *householdService) compensateHouseholdCreate(ctx context.Context, householdID uuid.UUID, cause error) error {
	srv.engineMetrics.CompensationsIssued.Inc()
	srv.log(ctx).Warn("Head creation failed, compensating household create",
		slog.Any("householdID", householdID), slog.Any("error", cause))

	if delErr := srv.householdRepo.Delete(ctx, householdID); delErr != nil {
		srv.engineMetrics.CompensationsFailed.Inc()
		srv.log(ctx).Error("Compensating delete failed, household orphaned",
			slog.String("step", domainerrors.StepCompensateDelete),
			slog.Any("householdID", householdID), slog.Any("error", delErr))

		return &domainerrors.CompensationFailed{
			Step:         domainerrors.StepCreateHeadCitizen,
			HouseholdID:  householdID,
			Cause:        cause,
			Compensation: delErr,
		}
	}

	return errors.Wrapf(cause, "saga step %s failed", domainerrors.StepCreateHeadCitizen)
}

// buildHeadCitizen validates and assembles the head citizen of a new
// household. The relationship is fixed to HEAD; anything else in the
// input is a validation failure, not a silent correction.
func (srv *householdService) buildHeadCitizen(input *usecase.CitizenInput) (*entity.Citizen, error) {
	if input.RelationshipToHead != "" && input.RelationshipToHead != entity.RelationshipHead {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"the first member of a new household must have relationship HEAD")
	}

	citizen, err := buildCitizen(input, srv.now())
	if err != nil {
		return nil, err
	}
	citizen.RelationshipToHead = entity.RelationshipHead

	if err := srv.policy.Validate(citizen.BirthDate, citizen.IdentityDocument, srv.now()); err != nil {
		return nil, err
	}

	return citizen, nil
}

// AddMember creates a citizen as an additional member of an existing
// household. The document policy and the headship check both run before
// the store call; a HEAD relationship is only accepted when the
// household's head slot is vacant.
func (srv *householdService) AddMember(ctx context.Context, householdID uuid.UUID, input *usecase.CitizenInput) (*usecase.CitizenView, error) {
	started := srv.now()
	defer func() {
		srv.engineMetrics.ObserveOperation("add_member", srv.now().Sub(started).Seconds())
	}()

	if _, err := srv.GetHousehold(ctx, householdID); err != nil {
		return nil, err
	}

	if input.RelationshipToHead == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"a relationship to the head is required for a new member")
	}

	citizen, err := buildCitizen(input, srv.now())
	if err != nil {
		return nil, err
	}

	if err := srv.policy.Validate(citizen.BirthDate, citizen.IdentityDocument, srv.now()); err != nil {
		return nil, err
	}

	if citizen.IsHead() {
		free, err := srv.headship.CanAssignHead(ctx, householdID, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, domainerrors.ErrHeadAlreadyAssigned
		}
	}

	citizen.HouseholdID = householdID
	if err := srv.citizenRepo.Create(ctx, citizen); err != nil {
		return nil, errors.Wrap(err, "failed to create citizen")
	}

	if citizen.IsHead() {
		// A member filling a vacant head slot refreshes the denormalized
		// head name, same as a promotion.
		syncHeadName(ctx, srv.householdRepo, srv.engineMetrics, srv.log(ctx),
			householdID, citizen.FullName, nil)
	}

	srv.log(ctx).Debug("Member added to household",
		slog.Any("householdID", householdID), slog.Any("citizenID", citizen.ID))

	return usecase.NewCitizenView(citizen, srv.now()), nil
}

// GetHousehold retrieves a single household.
func (srv *householdService) GetHousehold(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	household, err := srv.householdRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household")
	}

	return household, nil
}

// ListHouseholds retrieves all registered households.
func (srv *householdService) ListHouseholds(ctx context.Context) ([]*entity.Household, error) {
	households, err := srv.householdRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list households")
	}

	return households, nil
}

// ListMembers returns the roster of a household with statuses derived
// at read time.
func (srv *householdService) ListMembers(ctx context.Context, householdID uuid.UUID) ([]*usecase.CitizenView, error) {
	if _, err := srv.GetHousehold(ctx, householdID); err != nil {
		return nil, err
	}

	roster, err := srv.citizenRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household roster")
	}

	now := srv.now()
	views := make([]*usecase.CitizenView, 0, len(roster))
	for _, member := range roster {
		views = append(views, usecase.NewCitizenView(member, now))
	}

	return views, nil
}

// Overview loads the household and citizen lists concurrently. The two
// reads are independent, so no ordering is required between them.
func (srv *householdService) Overview(ctx context.Context) (*usecase.OverviewOutput, error) {
	output := &usecase.OverviewOutput{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		households, err := srv.householdRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list households")
		}
		output.Households = households

		return nil
	})
	g.Go(func() error {
		citizens, err := srv.citizenRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list citizens")
		}

		now := srv.now()
		views := make([]*usecase.CitizenView, 0, len(citizens))
		for _, citizen := range citizens {
			views = append(views, usecase.NewCitizenView(citizen, now))
		}
		output.Citizens = views

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return output, nil
}

// buildCitizen assembles a citizen entity from raw input, normalizing
// date-like values and rejecting anything unparseable before a single
// store call is made.
func buildCitizen(input *usecase.CitizenInput, now time.Time) (*entity.Citizen, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}

	birthDate, err := util.ParseDate(input.BirthDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("birth date: " + err.Error())
	}
	if birthDate.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("birth date is in the future")
	}

	citizen := &entity.Citizen{
		FullName:    input.FullName,
		BirthDate:   birthDate,
		Gender:      input.Gender,
		Ethnicity:   input.Ethnicity,
		Nationality: input.Nationality,
		Occupation:  input.Occupation,
	}
	if input.RelationshipToHead != "" {
		if !input.RelationshipToHead.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"unknown relationship " + string(input.RelationshipToHead))
		}
		citizen.RelationshipToHead = input.RelationshipToHead
	}

	if input.IdentityDocument != nil {
		doc, err := buildDocument(input.IdentityDocument)
		if err != nil {
			return nil, err
		}
		citizen.IdentityDocument = doc
	}

	return citizen, nil
}

// buildDocument normalizes candidate document fields. The issue date is
// parsed here; the policy decides whether it is acceptable.
func buildDocument(input *usecase.DocumentInput) (*entity.IdentityDocument, error) {
	doc := &entity.IdentityDocument{
		Number:     input.Number,
		IssuePlace: input.IssuePlace,
	}

	if strings.TrimSpace(input.IssueDate) != "" {
		issueDate, err := util.ParseDate(input.IssueDate)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("issue date: " + err.Error())
		}
		doc.IssueDate = issueDate
	}

	return doc, nil
}
