package application

import (
	"net/http"

	"github.com/Abraxas-365/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "You have already applied to this job")
	CodeOnlyJobseekersCanApply   = ErrRegistry.Register("ONLY_JOBSEEKERS", errx.TypeAuthorization, http.StatusForbidden, "Only job seekers can apply to jobs")
	CodeJobInactive              = ErrRegistry.Register("JOB_INACTIVE", errx.TypeBusiness, http.StatusBadRequest, "This job is no longer accepting applications")
	CodeDeadlinePassed           = ErrRegistry.Register("DEADLINE_PASSED", errx.TypeBusiness, http.StatusBadRequest, "The application deadline for this job has passed")
	CodeInsufficientPermissions  = ErrRegistry.Register("INSUFFICIENT_PERMISSIONS", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
	CodeInvalidRequest           = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrApplicationAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeApplicationAlreadyExists)
}

func ErrOnlyJobseekersCanApply() *errx.Error {
	return ErrRegistry.New(CodeOnlyJobseekersCanApply)
}

func ErrJobInactive() *errx.Error {
	return ErrRegistry.New(CodeJobInactive)
}

func ErrDeadlinePassed() *errx.Error {
	return ErrRegistry.New(CodeDeadlinePassed)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
