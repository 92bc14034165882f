package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Saga step names, used to tag transport failures with the sub-step
// that produced them.
const (
	StepCreateHousehold   = "create_household"
	StepCreateHeadCitizen = "create_head_citizen"
	StepCompensateDelete  = "compensate_delete_household"
	StepUpdateCitizen     = "update_citizen"
	StepPromoteSuccessor  = "promote_successor"
	StepTransferCitizen   = "transfer_citizen"
	StepDeleteEmptySource = "delete_empty_source_household"
	StepSyncHeadName      = "sync_head_name"
)

// CompensationFailed reports that a saga step failed AND the
// compensating action for an earlier committed step also failed,
// leaving an orphaned resource behind. Both errors are preserved so the
// caller can see what happened and what is left to clean up.
type CompensationFailed struct {
	Step         string    // The step whose compensation was attempted.
	HouseholdID  uuid.UUID // The household left orphaned by the failed delete.
	Cause        error     // The original failure that triggered compensation.
	Compensation error     // The failure of the compensating delete itself.
}

func (e *CompensationFailed) Error() string {
	return fmt.Sprintf("step %s failed and compensation did not complete: %v (compensation: %v)",
		e.Step, e.Cause, e.Compensation)
}

// HTTPCode returns the HTTP status code
func (e *CompensationFailed) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *CompensationFailed) ErrorCode() string {
	return "COMPENSATION_FAILED"
}

// Message returns the user-friendly error message
func (e *CompensationFailed) Message() string {
	return "some changes were saved, some were not: the household could not be removed after the head creation failed"
}

// Details returns detailed error information
func (e *CompensationFailed) Details() string {
	return fmt.Sprintf("household %s is orphaned and needs manual cleanup", e.HouseholdID)
}

// Unwrap exposes the original failure.
func (e *CompensationFailed) Unwrap() error {
	return e.Cause
}

// PartialSuccessionFailure reports that the edited citizen's update
// committed but the successor's promotion to head did not, leaving the
// household with zero heads. Re-issuing the promotion is safe; the
// failure carries the identifiers needed to retry exactly that step.
type PartialSuccessionFailure struct {
	HouseholdID uuid.UUID
	SuccessorID uuid.UUID
	Cause       error
}

func (e *PartialSuccessionFailure) Error() string {
	return fmt.Sprintf("succession incomplete: citizen update committed but successor %s was not promoted: %v",
		e.SuccessorID, e.Cause)
}

// HTTPCode returns the HTTP status code
func (e *PartialSuccessionFailure) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PartialSuccessionFailure) ErrorCode() string {
	return "PARTIAL_SUCCESSION_FAILURE"
}

// Message returns the user-friendly error message
func (e *PartialSuccessionFailure) Message() string {
	return "some changes were saved, some were not: the relationship change committed but the new head was not promoted; retry the promotion"
}

// Details returns detailed error information
func (e *PartialSuccessionFailure) Details() string {
	return fmt.Sprintf("household %s has no head; promote citizen %s to repair", e.HouseholdID, e.SuccessorID)
}

// Unwrap exposes the underlying transport failure.
func (e *PartialSuccessionFailure) Unwrap() error {
	return e.Cause
}
