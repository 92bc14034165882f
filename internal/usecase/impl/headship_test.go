package impl

import (
	"context"
	"testing"

	"hokhau/internal/domain/entity"
	mockRepo "hokhau/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadshipChecker_CurrentHead(t *testing.T) {
	citizenRepo := mockRepo.NewMockCitizenRepository(t)
	checker := NewHeadshipChecker(citizenRepo)

	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)

	citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{spouse, head}, nil)

	got, err := checker.CurrentHead(ctx, householdID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, head.ID, got.ID)
}

func TestHeadshipChecker_CurrentHead_VacantSlot(t *testing.T) {
	citizenRepo := mockRepo.NewMockCitizenRepository(t)
	checker := NewHeadshipChecker(citizenRepo)

	ctx := context.Background()
	householdID := uuid.New()
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)

	citizenRepo.EXPECT().
		ListByHousehold(ctx, householdID).
		Return([]*entity.Citizen{spouse}, nil)

	got, err := checker.CurrentHead(ctx, householdID)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHeadshipChecker_CanAssignHead(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()
	head := testCitizen(householdID, "Nguyen Van An", entity.RelationshipHead)
	spouse := testCitizen(householdID, "Tran Thi Hoa", entity.RelationshipSpouse)

	tests := []struct {
		name      string
		roster    []*entity.Citizen
		excluding uuid.UUID
		want      bool
	}{
		{name: "vacant slot", roster: []*entity.Citizen{spouse}, excluding: spouse.ID, want: true},
		{name: "occupied slot", roster: []*entity.Citizen{head, spouse}, excluding: spouse.ID, want: false},
		{name: "occupied by the excluded citizen", roster: []*entity.Citizen{head, spouse}, excluding: head.ID, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			citizenRepo := mockRepo.NewMockCitizenRepository(t)
			checker := NewHeadshipChecker(citizenRepo)

			citizenRepo.EXPECT().ListByHousehold(ctx, householdID).Return(tt.roster, nil)

			got, err := checker.CanAssignHead(ctx, householdID, tt.excluding)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
