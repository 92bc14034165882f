package impl

import (
	"context"
	"testing"

	"hokhau/internal/domain/entity"
	domainservice "hokhau/internal/domain/service"
	mockRepo "hokhau/internal/mocks/repository"
	"hokhau/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// citizenServiceFixtures holds all test dependencies for citizen service tests.
type citizenServiceFixtures struct {
	service       usecase.CitizenUsecase
	citizenRepo   *mockRepo.MockCitizenRepository
	householdRepo *mockRepo.MockHouseholdRepository
}

func createTestCitizenService(t *testing.T) citizenServiceFixtures {
	citizenRepo := mockRepo.NewMockCitizenRepository(t)
	householdRepo := mockRepo.NewMockHouseholdRepository(t)

	svc := NewCitizenService(CitizenServiceParams{
		CitizenRepo:   citizenRepo,
		HouseholdRepo: householdRepo,
		Headship:      NewHeadshipChecker(citizenRepo),
		Policy:        domainservice.NewDocumentPolicy(),
		EngineMetrics: newTestMetrics(),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return citizenServiceFixtures{
		service:       svc,
		citizenRepo:   citizenRepo,
		householdRepo: householdRepo,
	}
}

func TestCitizenService_GetCitizen_DerivesStatus(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	citizen.Deceased = true

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	view, err := fx.service.GetCitizen(ctx, citizen.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeceased, view.CurrentStatus)
}

func TestCitizenService_UpdateCitizen_ProfileEdit(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Thi Binh", entity.RelationshipChild)
	input := &usecase.UpdateCitizenInput{Occupation: strPtr("teacher")}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == citizen.ID && c.Occupation == "teacher"
		})).
		Return(nil)

	output, err := fx.service.UpdateCitizen(ctx, citizen.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "teacher", output.Citizen.Citizen.Occupation)
	assert.Empty(t, output.Warnings)
}

func TestCitizenService_UpdateCitizen_HeadRenameSyncsHouseholdName(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	household := &entity.Household{ID: householdID, HeadName: head.FullName}
	input := &usecase.UpdateCitizenInput{FullName: strPtr("Nguyen Van Anh")}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == head.ID && c.FullName == "Nguyen Van Anh"
		})).
		Return(nil)
	fx.householdRepo.EXPECT().FindByID(ctx, householdID).Return(household, nil)
	fx.householdRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(h *entity.Household) bool {
			return h.ID == householdID && h.HeadName == "Nguyen Van Anh"
		})).
		Return(nil)

	output, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	require.NoError(t, err)
	assert.Empty(t, output.Warnings)
}

func TestCitizenService_UpdateCitizen_HeadRenameSyncFailureIsWarning(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.UpdateCitizenInput{FullName: strPtr("Nguyen Van Anh")}

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)
	fx.citizenRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Citizen")).Return(nil)
	fx.householdRepo.EXPECT().
		FindByID(ctx, householdID).
		Return(nil, assert.AnError)

	output, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	require.NoError(t, err)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "head name was not refreshed")
	assert.Equal(t, "Nguyen Van Anh", output.Citizen.Citizen.FullName)
}

func TestCitizenService_UpdateCitizen_HeadshipGivenUpPromotesSuccessor(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	household := &entity.Household{ID: householdID, HeadName: head.FullName}
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
			return c.ID == head.ID && c.RelationshipToHead == entity.RelationshipOther
		})).
		Return(nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == spouse.ID && c.RelationshipToHead == entity.RelationshipHead
		})).
		Return(nil)
	fx.householdRepo.EXPECT().FindByID(ctx, householdID).Return(household, nil)
	fx.householdRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(h *entity.Household) bool {
			return h.HeadName == spouse.FullName
		})).
		Return(nil)

	output, err := fx.service.UpdateCitizen(ctx, head.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RelationshipOther, output.Citizen.Citizen.RelationshipToHead)
	assert.Empty(t, output.Warnings)
}

func TestCitizenService_PromoteToHead_CurrentHeadIsNoOp(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	head := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)

	fx.citizenRepo.EXPECT().FindByID(ctx, head.ID).Return(head, nil)

	view, err := fx.service.PromoteToHead(ctx, head.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RelationshipHead, view.Citizen.RelationshipToHead)
}

func TestCitizenService_PromoteToHead_RepairsHeadlessHousehold(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	member := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	other := testCitizen(householdID, "Nguyen Van Cuong", entity.RelationshipChild)
	household := &entity.Household{ID: householdID, HeadName: "Nguyen Van An"}

	fx.citizenRepo.EXPECT().FindByID(ctx, member.ID).Return(member, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{member, other}, nil)
	fx.citizenRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Citizen) bool {
			return c.ID == member.ID && c.RelationshipToHead == entity.RelationshipHead
		})).
		Return(nil)
	fx.householdRepo.EXPECT().FindByID(ctx, householdID).Return(household, nil)
	fx.householdRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(h *entity.Household) bool {
			return h.HeadName == member.FullName
		})).
		Return(nil)

	view, err := fx.service.PromoteToHead(ctx, member.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RelationshipHead, view.Citizen.RelationshipToHead)
}

func TestCitizenService_DeleteCitizen_LastMemberCascadesHousehold(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	citizen := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{citizen}, nil)
	fx.citizenRepo.EXPECT().Delete(ctx, citizen.ID).Return(nil)
	fx.householdRepo.EXPECT().Delete(ctx, householdID).Return(nil)

	output, err := fx.service.DeleteCitizen(ctx, citizen.ID)

	require.NoError(t, err)
	assert.True(t, output.HouseholdDeleted)
	assert.Empty(t, output.Warnings)
}

func TestCitizenService_DeleteCitizen_OthersRemainKeepsHousehold(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	citizen := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{citizen, head}, nil)
	fx.citizenRepo.EXPECT().Delete(ctx, citizen.ID).Return(nil)

	output, err := fx.service.DeleteCitizen(ctx, citizen.ID)

	require.NoError(t, err)
	assert.False(t, output.HouseholdDeleted)
}

func TestCitizenService_DeleteCitizen_CascadeFailureIsWarning(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	householdID := uuid.New()
	citizen := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{citizen}, nil)
	fx.citizenRepo.EXPECT().Delete(ctx, citizen.ID).Return(nil)
	fx.householdRepo.EXPECT().Delete(ctx, householdID).Return(assert.AnError)

	output, err := fx.service.DeleteCitizen(ctx, citizen.ID)

	require.NoError(t, err)
	assert.False(t, output.HouseholdDeleted)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "needs later cleanup")
}

func TestCitizenService_RegisterTemporaryAbsence_Success(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	input := &usecase.WindowInput{From: "2020-01-01", Reason: "seasonal work"}

	registered := *citizen
	registered.TemporaryAbsence = &entity.ResidencyWindow{
		From:   date(2020, 1, 1),
		Reason: "seasonal work",
	}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		RegisterTemporaryAbsence(ctx, citizen.ID, mock.MatchedBy(func(w *entity.ResidencyWindow) bool {
			return w.From.Equal(date(2020, 1, 1)) && w.To == nil && w.Reason == "seasonal work"
		})).
		Return(&registered, nil)

	view, err := fx.service.RegisterTemporaryAbsence(ctx, citizen.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusTempAbsent, view.CurrentStatus)
}

func TestCitizenService_CancelTemporaryResidence_ClearsWindow(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	citizen.TemporaryResidence = &entity.ResidencyWindow{From: date(2020, 1, 1), Reason: "study"}

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().CancelTemporaryResidence(ctx, citizen.ID).Return(nil)

	view, err := fx.service.CancelTemporaryResidence(ctx, citizen.ID)

	require.NoError(t, err)
	assert.Nil(t, view.Citizen.TemporaryResidence)
	assert.Equal(t, entity.StatusResident, view.CurrentStatus)
}

func TestCitizenService_DeclareDeath_Success(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)

	deceased := *citizen
	deceased.Deceased = true
	deceased.DeathReason = "natural causes"

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)
	fx.citizenRepo.EXPECT().
		DeclareDeath(ctx, citizen.ID, "natural causes").
		Return(&deceased, nil)

	view, err := fx.service.DeclareDeath(ctx, citizen.ID, "  natural causes  ")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeceased, view.CurrentStatus)
}

func TestCitizenService_DeclareDeath_AlreadyDeceasedIsNoOp(t *testing.T) {
	fx := createTestCitizenService(t)

	ctx := context.Background()
	citizen := testCitizen(uuid.New(), "Nguyen Van An", entity.RelationshipHead)
	citizen.Deceased = true
	citizen.DeathReason = "natural causes"

	fx.citizenRepo.EXPECT().FindByID(ctx, citizen.ID).Return(citizen, nil)

	view, err := fx.service.DeclareDeath(ctx, citizen.ID, "anything")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeceased, view.CurrentStatus)
}
