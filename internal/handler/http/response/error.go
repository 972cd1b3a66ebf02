package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/settlement"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/statutory"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/palm-payroll-go/internal/domain/worklog"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, worker.ErrWorkerInactive):
		BadRequestWithCode(w, "WORKER_INACTIVE", err.Error())
	case errors.Is(err, worker.ErrInvalidWorkerType):
		BadRequestWithCode(w, "INVALID_WORKER_TYPE", err.Error())

	// Work log domain errors
	case errors.Is(err, worklog.ErrFutureLogDate):
		BadRequestWithCode(w, "FUTURE_LOG_DATE", err.Error())
	case errors.Is(err, worklog.ErrNoUnsettledLogs):
		ConflictWithCode(w, "NO_UNSETTLED_LOGS", "No unsettled work logs for this worker")
	case errors.Is(err, worklog.ErrWorkLogAlreadySettled):
		ConflictWithCode(w, "ALREADY_SETTLED", "Work log already settled by another request")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrFuturePeriod):
		BadRequestWithCode(w, "FUTURE_PERIOD", err.Error())
	case errors.Is(err, payroll.ErrAllowanceNotLocal):
		BadRequestWithCode(w, "ALLOWANCE_LOCAL_ONLY", err.Error())

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrFutureSettlement):
		BadRequestWithCode(w, "FUTURE_SETTLEMENT_DATE", err.Error())

	// Statutory domain errors
	case errors.Is(err, statutory.ErrInvalidGrossPay):
		BadRequestWithCode(w, "INVALID_GROSS_PAY", err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
