package application

import "github.com/Abraxas-365/jobboard/pkg/iam/auth"

// CanApply checks that the caller is a job seeker allowed to submit applications
func CanApply(ac *auth.AuthContext) error {
	if !ac.HasRole(auth.RoleJobseeker) || !ac.HasScope(auth.ScopeApplicationsApply) {
		return ErrOnlyJobseekersCanApply()
	}
	return nil
}

// CanListOwn checks that the caller may read the applications they submitted
func CanListOwn(ac *auth.AuthContext) error {
	if !ac.HasScope(auth.ScopeApplicationsReadOwn) {
		return ErrInsufficientPermissions().WithDetail("required_scope", auth.ScopeApplicationsReadOwn)
	}
	return nil
}
