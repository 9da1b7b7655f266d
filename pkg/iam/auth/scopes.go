package auth

import "slices"

// Role is the mutually exclusive account role carried in the access token
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// IsValid reports whether the role is one the API knows about
func (r Role) IsValid() bool {
	return r == RoleJobseeker || r == RoleEmployer
}

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Job board
// ============================================================================

const (
	// Job scopes
	ScopeJobsRead   = "jobs:read"
	ScopeJobsWrite  = "jobs:write"  // Create and edit own jobs
	ScopeJobsDelete = "jobs:delete" // Delete own jobs

	// Application scopes
	ScopeApplicationsApply   = "applications:apply"    // Submit applications
	ScopeApplicationsReadOwn = "applications:read:own" // Applications the caller submitted
	ScopeApplicationsReview  = "applications:review"   // Applications received on own jobs
)

// RoleScopes grants scopes to each role
var RoleScopes = map[Role][]string{
	RoleJobseeker: {
		ScopeJobsRead,
		ScopeApplicationsApply,
		ScopeApplicationsReadOwn,
	},
	RoleEmployer: {
		ScopeJobsRead,
		ScopeJobsWrite,
		ScopeJobsDelete,
		ScopeApplicationsReadOwn,
		ScopeApplicationsReview,
	},
}

// HasScope reports whether the role grants scope
func (r Role) HasScope(scope string) bool {
	return slices.Contains(RoleScopes[r], scope)
}
