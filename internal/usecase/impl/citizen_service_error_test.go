package impl

import (
	"context"
	"testing"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCitizenService_GetCitizen_NotFound(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizenID := uuid.New()

	fx.citizenRepo.EXPECT().FindByID(ctx, citizenID).Return(nil, repository.ErrCitizenNotFound)

	_, err := fx.service.GetCitizen(ctx, citizenID)

	assert.True(t, errors.Is(err, domainerrors.ErrCitizenNotFound))
}

func TestCitizenService_UpdateCitizen_MinorWithDocumentRejected(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van Cuong", entity.RelationshipChild)
	input := &usecase.UpdateCitizenInput{BirthDate: strPtr("2020-03-01")}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.UpdateCitizen(ctx, citizen.ID, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPolicyViolation))
	assert.Contains(t, err.(domainerrors.AppError).Details(), "number")
}

func TestCitizenService_UpdateCitizen_AdultWithoutDocumentRejected(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Thi Binh", entity.RelationshipChild)
	input := &usecase.UpdateCitizenInput{ClearDocument: true}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.UpdateCitizen(ctx, citizen.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPolicyViolation))
}

func TestCitizenService_UpdateCitizen_LastMemberCannotAbandonHeadship(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.UpdateCitizenInput{RelationshipToHead: relPtr(entity.RelationshipOther)}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head}, nil)

	_, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrNoSuccessorAvailable))
}

func TestCitizenService_UpdateCitizen_HeadshipGivenUpWithoutNomination(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.UpdateCitizenInput{RelationshipToHead: relPtr(entity.RelationshipOther)}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head, spouse}, nil)

	_, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.(domainerrors.AppError).Details(), "successor")
}

func TestCitizenService_UpdateCitizen_SuccessorOutsideHousehold(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	strangerID := uuid.New()
	input := &usecase.UpdateCitizenInput{
		RelationshipToHead: relPtr(entity.RelationshipOther),
		SuccessorID:        &strangerID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head, spouse}, nil)

	_, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCitizenService_UpdateCitizen_SecondHeadRejected(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.UpdateCitizenInput{RelationshipToHead: relPtr(entity.RelationshipHead)}

	fx.citizenRepo.EXPECT().FindByID(ctx, spouse.ID).Return(spouse, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head, spouse}, nil)

	_, err := fx.service.UpdateCitizen(ctx, spouse.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrHeadAlreadyAssigned))
}

func TestCitizenService_UpdateCitizen_PromotionFailureIsPartial(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	input := &usecase.UpdateCitizenInput{
		RelationshipToHead: relPtr(entity.RelationshipOther),
		SuccessorID:        &spouse.ID,
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head, spouse}, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == head.ID
		})).
		Return(nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == spouse.ID
		})).
		Return(assert.AnError)

	_, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	require.Error(t, err)
	var partial *domainerrors.PartialSuccessionFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, householdID, partial.HouseholdID)
	assert.Equal(t, spouse.ID, partial.SuccessorID)
	assert.Contains(t, partial.Message(), "some changes were saved, some were not")
}

func TestCitizenService_PromoteToHead_OccupiedSlotRejected(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)

	fx.citizenRepo.EXPECT().FindByID(ctx, spouse.ID).Return(spouse, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{head, spouse}, nil)

	_, err := fx.service.PromoteToHead(ctx, spouse.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrHeadAlreadyAssigned))
}

func TestCitizenService_RegisterWindow_DeceasedRejected(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	citizen.Deceased = true
	input := &usecase.WindowInput{From: "2020-01-01", Reason: "study"}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.RegisterTemporaryResidence(ctx, citizen.ID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCitizenService_RegisterWindow_EndsBeforeStart(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.WindowInput{From: "2020-06-01", To: "2020-01-01", Reason: "study"}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.RegisterTemporaryAbsence(ctx, citizen.ID, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.(domainerrors.AppError).Details(), "ends before it starts")
}

func TestCitizenService_DeclareDeath_ReasonTooShort(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	_, err := fx.service.DeclareDeath(ctx, citizen.ID, " x ")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
