package domain

import "time"

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Registration statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusPaused   = "paused"
)

// AdminIdentity is the authenticated administrator principal held by the
// session store.
type AdminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsSuperAdmin reports whether the identity carries the elevated role.
// Derived purely from the stored role field.
func (a *AdminIdentity) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// MemberIdentity is the authenticated team-member principal held by the
// session store.
type MemberIdentity struct {
	ID           string `json:"id"`
	MobileNumber string `json:"mobile_number"`
	Name         string `json:"name,omitempty"`
	IsVerified   bool   `json:"is_verified"`
}

// AdminAccount is the stored credential record backing admin login.
type AdminAccount struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TeamMember is the stored record backing member login by mobile number.
type TeamMember struct {
	ID           string
	MobileNumber string
	Name         string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClientRecord is a registered client, read-only to the workflows.
// Fetched by mobile-number lookup; its Category drives eligibility.
type ClientRecord struct {
	ID           string
	Name         string
	Address      string
	Category     string
	District     string
	AgentPro     string
	MobileNumber string
}

// EmploymentCategory is a selectable employment category.
type EmploymentCategory struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
}

// Program is a scheme offered under an employment category.
type Program struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Conditions  string
}

// EmploymentRegistration is a client's application for a category.
// Write-once per successful submission; status transitions are an
// admin concern.
type EmploymentRegistration struct {
	ID           string
	ClientID     string
	CategoryID   string
	MobileNumber string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminRow mirrors one row returned by the admin login procedure.
type AdminRow struct {
	ID       string
	Username string
	Role     string
}

// VerificationCodeResponse is the payload of the code-issuance
// procedure. Fields beyond Success are optional; callers accept them
// present-and-truthy rather than validating a schema.
type VerificationCodeResponse struct {
	Success          bool
	VerificationCode string
	Error            string
}

// MemberPayload is the nested member record inside a login response.
type MemberPayload struct {
	ID           string
	MobileNumber string
	Name         string
}

// MemberLoginResponse is the payload of the member login procedure.
// Member is only meaningful when Success is true, and may still be
// absent; callers must check both.
type MemberLoginResponse struct {
	Success bool
	Member  *MemberPayload
	Error   string
}
