package job

import "github.com/Abraxas-365/jobboard/pkg/iam/auth"

// Action is something a caller may try to do with a job
type Action string

const (
	ActionCreate           Action = "create"
	ActionUpdate           Action = "update"
	ActionDelete           Action = "delete"
	ActionViewApplications Action = "view_applications"
)

var actionScopes = map[Action]string{
	ActionCreate:           auth.ScopeJobsWrite,
	ActionUpdate:           auth.ScopeJobsWrite,
	ActionDelete:           auth.ScopeJobsDelete,
	ActionViewApplications: auth.ScopeApplicationsReview,
}

// Authorize is the single capability check for restricted job operations.
// The caller's role must grant the action's scope, and for anything but create
// the caller must own the job.
func Authorize(ac *auth.AuthContext, j *Job, action Action) error {
	scope, known := actionScopes[action]
	if !known || !ac.HasScope(scope) {
		return ErrInsufficientPermissions().
			WithDetail("action", action).
			WithDetail("required_scope", scope)
	}

	if action == ActionCreate {
		return nil
	}

	if j == nil || !j.IsOwnedBy(ac.UserID) {
		return ErrNotOwner().WithDetail("action", action)
	}
	return nil
}
