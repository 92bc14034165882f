package impl

import (
	"context"
	"testing"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	mockRepo "hokhau/internal/mocks/repository"
	"hokhau/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transferServiceFixtures holds all test dependencies for transfer service tests.
type transferServiceFixtures struct {
	service       usecase.TransferUsecase
	citizenRepo   *mockRepo.MockCitizenRepository
	householdRepo *mockRepo.MockHouseholdRepository
}

func createTestTransferService(t *testing.T) transferServiceFixtures {
	citizenRepo := mockRepo.NewMockCitizenRepository(t)
	householdRepo := mockRepo.NewMockHouseholdRepository(t)

	svc := NewTransferService(TransferServiceParams{
		CitizenRepo:   citizenRepo,
		HouseholdRepo: householdRepo,
		Headship:      NewHeadshipChecker(citizenRepo),
		EngineMetrics: newTestMetrics(),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return transferServiceFixtures{
		service:       svc,
		citizenRepo:   citizenRepo,
		householdRepo: householdRepo,
	}
}

func TestTransferService_Transfer_MemberMovesImmediately(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Tran Thi Hoa", entity.RelationshipSpouse)
	head := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen, head}, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == citizen.ID &&
				c.HouseholdID == destID &&
				c.RelationshipToHead == entity.RelationshipOther
		})).
		Return(nil)

	output, err := fx.service.Transfer(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Executed)
	assert.Nil(t, output.Proposal)
	assert.Equal(t, destID, output.Citizen.Citizen.HouseholdID)
	assert.Empty(t, output.Warnings)
}

func TestTransferService_Transfer_HeadLeavingPromotesSuccessor(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	head := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(sourceID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.TransferInput{
		CitizenID:              head.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
		SuccessorID:            &spouse.ID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{head, spouse}, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == head.ID && c.HouseholdID == destID
		})).
		Return(nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == spouse.ID && c.RelationshipToHead == entity.RelationshipHead
		})).
		Return(nil)
	fx.householdRepo.EXPECT().
		FindByID(ctx, sourceID).
		Return(&entity.Household{ID: sourceID, HeadName: head.FullName}, nil)
	fx.householdRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(h *entity.Household) bool {
			return h.ID == sourceID && h.HeadName == spouse.FullName
		})).
		Return(nil)

	output, err := fx.service.Transfer(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Executed)
	assert.Empty(t, output.Warnings)
}

func TestTransferService_Transfer_HeadLeavingWithoutSuccessor(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	head := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(sourceID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.TransferInput{
		CitizenID:              head.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{head, spouse}, nil)

	_, err := fx.service.Transfer(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.(domainerrors.AppError).Details(), "successor")
}

func TestTransferService_Transfer_DestinationHeadSlotOccupied(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Tran Thi Hoa", entity.RelationshipSpouse)
	sourceHead := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	destHead := testCitizen(destID, "Le Van Duc", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipHead,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen, sourceHead}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, destID).
		Return([]*entity.Citizen{destHead}, nil)

	_, err := fx.service.Transfer(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrHeadAlreadyAssigned))
}

func TestTransferService_Transfer_SameHouseholdRejected(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	citizen := testCitizen(sourceID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: sourceID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.Transfer(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransferService_Transfer_DestinationNotFound(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Tran Thi Hoa", entity.RelationshipSpouse)
	destID := uuid.New()
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(nil, repository.ErrHouseholdNotFound)

	_, err := fx.service.Transfer(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrHouseholdNotFound))
}

func TestTransferService_Transfer_LastMemberReturnsProposal(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen}, nil)

	output, err := fx.service.Transfer(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Executed)
	require.NotNil(t, output.Proposal)
	assert.True(t, output.Proposal.LastMember)
	assert.Equal(t, citizen.ID, output.Proposal.Input.CitizenID)
}

func TestTransferService_ConfirmTransfer_CommitsAndDeletesSource(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen}, nil)

	proposed, err := fx.service.Transfer(ctx, input)
	require.NoError(t, err)
	require.False(t, proposed.Executed)

	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == citizen.ID && c.HouseholdID == destID
		})).
		Return(nil)
	fx.householdRepo.EXPECT().Delete(ctx, sourceID).Return(nil)

	output, err := fx.service.ConfirmTransfer(ctx, proposed.Proposal.ID)

	require.NoError(t, err)
	assert.True(t, output.Executed)
	assert.Empty(t, output.Warnings)
	assert.Equal(t, destID, output.Citizen.Citizen.HouseholdID)
}

func TestTransferService_ConfirmTransfer_SourceCleanupFailureIsWarning(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen}, nil)

	proposed, err := fx.service.Transfer(ctx, input)
	require.NoError(t, err)

	fx.citizenRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Citizen")).Return(nil)
	fx.householdRepo.EXPECT().Delete(ctx, sourceID).Return(assert.AnError)

	output, err := fx.service.ConfirmTransfer(ctx, proposed.Proposal.ID)

	// The citizen's move stands; the failed cleanup is reported, not rolled back.
	require.NoError(t, err)
	assert.True(t, output.Executed)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "needs later cleanup")
}

func TestTransferService_ConfirmTransfer_UnknownProposal(t *testing.T) {
	fx := createTestTransferService(t)

	_, err := fx.service.ConfirmTransfer(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrProposalNotFound))
}

func TestTransferService_ConfirmTransfer_ExpiredProposal(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen}, nil)

	proposed, err := fx.service.Transfer(ctx, input)
	require.NoError(t, err)

	// Move the store's clock past the proposal deadline.
	svc, ok := fx.service.(*transferService)
	require.True(t, ok)
	svc.proposals.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = fx.service.ConfirmTransfer(ctx, proposed.Proposal.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrProposalExpired))

	// The proposal is gone; a retry now reports not-found.
	_, err = fx.service.ConfirmTransfer(ctx, proposed.Proposal.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProposalNotFound))
}

func TestTransferService_Transfer_DeceasedMembersDoNotCount(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	sourceID := uuid.New()
	destID := uuid.New()
	citizen := testCitizen(sourceID, "Nguyen Van An", entity.RelationshipHead)
	deceased := testCitizen(sourceID, "Nguyen Thi Binh", entity.RelationshipParent)
	deceased.Deceased = true
	input := &usecase.TransferInput{
		CitizenID:              citizen.ID,
		DestinationHouseholdID: destID,
		NewRelationship:        entity.RelationshipOther,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.householdRepo.EXPECT().FindByID(ctx, destID).Return(&entity.Household{ID: destID}, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, sourceID).
		Return([]*entity.Citizen{citizen, deceased}, nil)

	output, err := fx.service.Transfer(ctx, input)

	// Only deceased members remain behind, so this is a last-member move.
	require.NoError(t, err)
	assert.False(t, output.Executed)
	require.NotNil(t, output.Proposal)
}
