package models

import "time"

// Role is drawn from the fixed closed set of dashboard roles. Unrecognized
// roles are tolerated downstream (the access policy fails open) but are
// never created by login.
type Role string

const (
	RoleAdmin           Role = "Admin"
	RoleThreatDetector  Role = "Threat Detector"
	RoleRiskAnalyst     Role = "Risk Analyst"
	RoleDatabaseAuditor Role = "Database Auditor"
)

// User is an account that can authenticate against the dashboard.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is an authenticated principal's server-side state. Created at
// login, destroyed at logout; absence means "not logged in".
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
