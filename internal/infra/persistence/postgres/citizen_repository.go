package postgres

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// citizenRepository implements the domain.CitizenRepository interface.
type citizenRepository struct {
	db *gorm.DB
}

// NewCitizenRepository is the constructor for citizenRepository.
func NewCitizenRepository(db *gorm.DB) repository.CitizenRepository {
	return &citizenRepository{db: db}
}

// Create persists a new citizen record.
func (repo *citizenRepository) Create(ctx context.Context, citizen *entity.Citizen) error {
	citizenM := fromCitizenDomain(citizen)

	if err := repo.db.WithContext(ctx).Create(citizenM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrHouseholdNotFound.WithDetails("citizen references an unknown household")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required citizen information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("citizen record violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create citizen")
	}

	// Update the entity with generated values
	citizen.ID = citizenM.ID
	citizen.CreatedAt = citizenM.CreatedAt
	citizen.UpdatedAt = citizenM.UpdatedAt

	return nil
}

// FindByID retrieves a citizen by their unique ID.
func (repo *citizenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Citizen, error) {
	var citizenM model.CitizenModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&citizenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCitizenNotFound
		}

		return nil, errors.Wrap(err, "failed to find citizen by ID")
	}

	return toCitizenDomain(&citizenM), nil
}

// ListByHousehold retrieves the member roster of a household, head first.
func (repo *citizenRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.Citizen, error) {
	var citizenModels []*model.CitizenModel
	err := repo.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("relationship_to_head = 'HEAD' DESC, created_at ASC").
		Find(&citizenModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list household members")
	}

	return toCitizenDomainSlice(citizenModels), nil
}

// List retrieves all registered citizens.
func (repo *citizenRepository) List(ctx context.Context) ([]*entity.Citizen, error) {
	var citizenModels []*model.CitizenModel
	err := repo.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&citizenModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list citizens")
	}

	return toCitizenDomainSlice(citizenModels), nil
}

// Update saves the full citizen record.
func (repo *citizenRepository) Update(ctx context.Context, citizen *entity.Citizen) error {
	citizenM := fromCitizenDomain(citizen)

	if err := repo.db.WithContext(ctx).Save(citizenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrHouseholdNotFound.WithDetails("citizen references an unknown household")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("citizen record violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update citizen")
	}

	citizen.UpdatedAt = citizenM.UpdatedAt

	return nil
}

// Delete removes a citizen by their ID.
func (repo *citizenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CitizenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete citizen")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCitizenNotFound
	}

	return nil
}

// RegisterTemporaryResidence stores the temporary-residence window and
// returns the refreshed record.
func (repo *citizenRepository) RegisterTemporaryResidence(ctx context.Context, id uuid.UUID, window *entity.ResidencyWindow) (*entity.Citizen, error) {
	updates := map[string]any{
		"temp_residence_from":   window.From,
		"temp_residence_to":     window.To,
		"temp_residence_reason": window.Reason,
	}

	return repo.applyWindowUpdate(ctx, id, updates, "failed to register temporary residence")
}

// CancelTemporaryResidence clears the temporary-residence window.
func (repo *citizenRepository) CancelTemporaryResidence(ctx context.Context, id uuid.UUID) error {
	updates := map[string]any{
		"temp_residence_from":   nil,
		"temp_residence_to":     nil,
		"temp_residence_reason": nil,
	}

	_, err := repo.applyWindowUpdate(ctx, id, updates, "failed to cancel temporary residence")

	return err
}

// RegisterTemporaryAbsence stores the temporary-absence window and
// returns the refreshed record.
func (repo *citizenRepository) RegisterTemporaryAbsence(ctx context.Context, id uuid.UUID, window *entity.ResidencyWindow) (*entity.Citizen, error) {
	updates := map[string]any{
		"temp_absence_from":   window.From,
		"temp_absence_to":     window.To,
		"temp_absence_reason": window.Reason,
	}

	return repo.applyWindowUpdate(ctx, id, updates, "failed to register temporary absence")
}

// CancelTemporaryAbsence clears the temporary-absence window.
func (repo *citizenRepository) CancelTemporaryAbsence(ctx context.Context, id uuid.UUID) error {
	updates := map[string]any{
		"temp_absence_from":   nil,
		"temp_absence_to":     nil,
		"temp_absence_reason": nil,
	}

	_, err := repo.applyWindowUpdate(ctx, id, updates, "failed to cancel temporary absence")

	return err
}

// DeclareDeath marks the citizen deceased with the recorded reason and
// returns the refreshed record. The flag is never cleared.
func (repo *citizenRepository) DeclareDeath(ctx context.Context, id uuid.UUID, reason string) (*entity.Citizen, error) {
	updates := map[string]any{
		"deceased":     true,
		"death_reason": reason,
	}

	return repo.applyWindowUpdate(ctx, id, updates, "failed to declare death")
}

// applyWindowUpdate runs a column-level update against a single citizen
// and reloads the record.
func (repo *citizenRepository) applyWindowUpdate(ctx context.Context, id uuid.UUID, updates map[string]any, failureMsg string) (*entity.Citizen, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CitizenModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, failureMsg)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCitizenNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

// toCitizenDomain converts a GORM CitizenModel to a domain Citizen entity.
func toCitizenDomain(data *model.CitizenModel) *entity.Citizen {
	if data == nil {
		return nil
	}

	citizen := &entity.Citizen{
		ID:                 data.ID,
		HouseholdID:        data.HouseholdID,
		FullName:           data.FullName,
		BirthDate:          data.BirthDate,
		Gender:             data.Gender,
		Ethnicity:          data.Ethnicity,
		Nationality:        data.Nationality,
		Occupation:         data.Occupation,
		RelationshipToHead: entity.Relationship(data.RelationshipToHead),
		Deceased:           data.Deceased,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.DeathReason != nil {
		citizen.DeathReason = *data.DeathReason
	}

	if data.DocumentNumber != nil {
		citizen.IdentityDocument = &entity.IdentityDocument{
			Number: *data.DocumentNumber,
		}
		if data.DocumentIssueDate != nil {
			citizen.IdentityDocument.IssueDate = *data.DocumentIssueDate
		}
		if data.DocumentIssuePlace != nil {
			citizen.IdentityDocument.IssuePlace = *data.DocumentIssuePlace
		}
	}

	if data.TempResidenceFrom != nil {
		citizen.TemporaryResidence = &entity.ResidencyWindow{
			From: *data.TempResidenceFrom,
			To:   data.TempResidenceTo,
		}
		if data.TempResidenceReason != nil {
			citizen.TemporaryResidence.Reason = *data.TempResidenceReason
		}
	}

	if data.TempAbsenceFrom != nil {
		citizen.TemporaryAbsence = &entity.ResidencyWindow{
			From: *data.TempAbsenceFrom,
			To:   data.TempAbsenceTo,
		}
		if data.TempAbsenceReason != nil {
			citizen.TemporaryAbsence.Reason = *data.TempAbsenceReason
		}
	}

	return citizen
}

func toCitizenDomainSlice(data []*model.CitizenModel) []*entity.Citizen {
	citizens := make([]*entity.Citizen, 0, len(data))
	for _, citizenM := range data {
		citizens = append(citizens, toCitizenDomain(citizenM))
	}

	return citizens
}

// fromCitizenDomain converts a domain Citizen entity to a GORM CitizenModel.
func fromCitizenDomain(data *entity.Citizen) *model.CitizenModel {
	if data == nil {
		return nil
	}

	citizenM := &model.CitizenModel{
		ID:                 data.ID,
		HouseholdID:        data.HouseholdID,
		FullName:           data.FullName,
		BirthDate:          data.BirthDate,
		Gender:             data.Gender,
		Ethnicity:          data.Ethnicity,
		Nationality:        data.Nationality,
		Occupation:         data.Occupation,
		RelationshipToHead: string(data.RelationshipToHead),
		Deceased:           data.Deceased,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.DeathReason != "" {
		citizenM.DeathReason = &data.DeathReason
	}

	if doc := data.IdentityDocument; doc != nil {
		citizenM.DocumentNumber = &doc.Number
		citizenM.DocumentIssuePlace = &doc.IssuePlace
		if !doc.IssueDate.IsZero() {
			issueDate := doc.IssueDate
			citizenM.DocumentIssueDate = &issueDate
		}
	}

	if window := data.TemporaryResidence; window != nil {
		from := window.From
		citizenM.TempResidenceFrom = &from
		citizenM.TempResidenceTo = window.To
		citizenM.TempResidenceReason = &window.Reason
	}

	if window := data.TemporaryAbsence; window != nil {
		from := window.From
		citizenM.TempAbsenceFrom = &from
		citizenM.TempAbsenceTo = window.To
		citizenM.TempAbsenceReason = &window.Reason
	}

	return citizenM
}
