package domain

import "context"

// RemoteDataService is the hosted-backend contract the workflows
// consume: table-style reads and writes plus the named login and
// verification procedures. Workflows treat it as opaque; the concrete
// implementation lives in the backend package.
type RemoteDataService interface {
	// VerifyAdminLogin exchanges credentials for matching admin rows.
	// Bad credentials yield zero rows, not an error.
	VerifyAdminLogin(ctx context.Context, username, password string) ([]AdminRow, error)

	// SendVerificationCode issues a one-time code for the mobile
	// number. The code is relayed back in the response.
	SendVerificationCode(ctx context.Context, mobileNumber string) (*VerificationCodeResponse, error)

	// VerifyMemberLogin consumes a code and returns the member record
	// on success.
	VerifyMemberLogin(ctx context.Context, mobileNumber, code string) (*MemberLoginResponse, error)

	FindClientByMobile(ctx context.Context, mobileNumber string) (*ClientRecord, error)
	ActiveCategories(ctx context.Context) ([]EmploymentCategory, error)
	RegistrationsByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]EmploymentRegistration, error)
	// ActiveRegistrationsByMobile returns registrations for the mobile
	// number whose status is not rejected, across all categories.
	ActiveRegistrationsByMobile(ctx context.Context, mobileNumber string) ([]EmploymentRegistration, error)
	CreateRegistration(ctx context.Context, reg *EmploymentRegistration) error
}

// SessionStore persists authenticated identities across restarts.
// Admin and member sessions live under independent keys and coexist.
// Restore returns false for absent or malformed entries; it never
// fails. No network access.
type SessionStore interface {
	RestoreAdmin() (*AdminIdentity, bool)
	PersistAdmin(identity *AdminIdentity) error
	ClearAdmin() error

	RestoreMember() (*MemberIdentity, bool)
	PersistMember(identity *MemberIdentity) error
	ClearMember() error
}

// AdminRepository defines admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *AdminAccount) error
	FindByUsername(ctx context.Context, username string) (*AdminAccount, error)
	Count(ctx context.Context) (int64, error)
}

// MemberRepository defines team member data access
type MemberRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	FindByMobile(ctx context.Context, mobileNumber string) (*TeamMember, error)
	MarkVerified(ctx context.Context, id string) error
}

// ClientRepository defines registered-client data access
type ClientRepository interface {
	Create(ctx context.Context, client *ClientRecord) error
	FindByMobile(ctx context.Context, mobileNumber string) (*ClientRecord, error)
}

// CategoryRepository defines employment category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *EmploymentCategory) error
	Update(ctx context.Context, category *EmploymentCategory) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*EmploymentCategory, error)
	List(ctx context.Context) ([]EmploymentCategory, error)
	ListActive(ctx context.Context) ([]EmploymentCategory, error)
}

// ProgramRepository defines program data access
type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, categoryID string) ([]Program, error)
}

// RegistrationRepository defines employment registration data access
type RegistrationRepository interface {
	Create(ctx context.Context, reg *EmploymentRegistration) error
	FindByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]EmploymentRegistration, error)
	// FindActiveByMobile excludes rejected registrations.
	FindActiveByMobile(ctx context.Context, mobileNumber string) ([]EmploymentRegistration, error)
	List(ctx context.Context) ([]EmploymentRegistration, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// VerificationCodeService issues and consumes one-time login codes
type VerificationCodeService interface {
	Issue(ctx context.Context, mobileNumber string) (string, error)
	Consume(ctx context.Context, mobileNumber, code string) (bool, error)
	CanResend(ctx context.Context, mobileNumber string) (bool, int64, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations for the admin API
type TokenService interface {
	GenerateAccessToken(adminID, role string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// TokenClaims represents validated access token claims
type TokenClaims struct {
	AdminID   string `json:"admin_id"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// CasbinEnforcer is the slice of the Casbin enforcer the service needs
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
