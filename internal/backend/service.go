package backend

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/elifesajna/self-employ-final/domain"
)

// Service implements domain.RemoteDataService: the hosted-backend side
// of the portal, combining the table repositories, the verification
// code service and credential checking. The workflows only ever see
// the interface.
type Service struct {
	admins        domain.AdminRepository
	members       domain.MemberRepository
	clients       domain.ClientRepository
	categories    domain.CategoryRepository
	registrations domain.RegistrationRepository
	codes         domain.VerificationCodeService
	passwords     domain.PasswordService
	notifier      domain.NotificationService
	audit         domain.AuditLogger
	logger        *zap.Logger
}

// New wires the backend service.
func New(
	admins domain.AdminRepository,
	members domain.MemberRepository,
	clients domain.ClientRepository,
	categories domain.CategoryRepository,
	registrations domain.RegistrationRepository,
	codes domain.VerificationCodeService,
	passwords domain.PasswordService,
	notifier domain.NotificationService,
	audit domain.AuditLogger,
	logger *zap.Logger,
) domain.RemoteDataService {
	return &Service{
		admins:        admins,
		members:       members,
		clients:       clients,
		categories:    categories,
		registrations: registrations,
		codes:         codes,
		passwords:     passwords,
		notifier:      notifier,
		audit:         audit,
		logger:        logger,
	}
}

// VerifyAdminLogin implements domain.RemoteDataService. Unknown
// usernames and password mismatches both yield zero rows, never an
// error, so callers cannot distinguish them.
func (s *Service) VerifyAdminLogin(ctx context.Context, username, password string) ([]domain.AdminRow, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			s.audit.LogEvent(domain.NewAuditEvent(domain.AdminLoginFailureEvent).WithUsername(username).WithError(domain.ErrInvalidCredentials))
			return nil, nil
		}
		return nil, err
	}

	if !s.passwords.Verify(admin.PasswordHash, password) {
		s.audit.LogEvent(domain.NewAuditEvent(domain.AdminLoginFailureEvent).WithUsername(username).WithError(domain.ErrInvalidCredentials))
		return nil, nil
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.AdminLoginEvent).WithSubject(admin.ID).WithUsername(username))
	return []domain.AdminRow{{ID: admin.ID, Username: admin.Username, Role: admin.Role}}, nil
}

// SendVerificationCode implements domain.RemoteDataService. The code
// is relayed in the response; SMS delivery is best effort on top.
func (s *Service) SendVerificationCode(ctx context.Context, mobileNumber string) (*domain.VerificationCodeResponse, error) {
	member, err := s.members.FindByMobile(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return &domain.VerificationCodeResponse{Error: "Mobile number not registered"}, nil
		}
		return nil, err
	}

	code, err := s.codes.Issue(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, domain.ErrCodeResendLimit) {
			return &domain.VerificationCodeResponse{Error: "Please wait before requesting a new code"}, nil
		}
		return nil, err
	}

	message := fmt.Sprintf("Your verification code is: %s", code)
	if err := s.notifier.SendSMS(mobileNumber, message); err != nil {
		s.logger.Warn("sms delivery failed", zap.String("mobile_number", mobileNumber), zap.Error(err))
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.CodeIssuedEvent).WithSubject(member.ID).WithMobile(mobileNumber))
	return &domain.VerificationCodeResponse{Success: true, VerificationCode: code}, nil
}

// VerifyMemberLogin implements domain.RemoteDataService. Consumes the
// one-time code and returns the member record; members are marked
// verified on their first successful login.
func (s *Service) VerifyMemberLogin(ctx context.Context, mobileNumber, code string) (*domain.MemberLoginResponse, error) {
	ok, err := s.codes.Consume(ctx, mobileNumber, code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeInvalid),
			errors.Is(err, domain.ErrCodeNotFound),
			errors.Is(err, domain.ErrCodeExpired):
			s.audit.LogEvent(domain.NewAuditEvent(domain.MemberLoginFailureEvent).WithMobile(mobileNumber).WithError(err))
			return &domain.MemberLoginResponse{Error: "Invalid verification code"}, nil
		case errors.Is(err, domain.ErrCodeMaxAttempts):
			s.audit.LogEvent(domain.NewAuditEvent(domain.MemberLoginFailureEvent).WithMobile(mobileNumber).WithError(err))
			return &domain.MemberLoginResponse{Error: "Too many attempts. Please request a new code"}, nil
		default:
			return nil, err
		}
	}
	if !ok {
		return &domain.MemberLoginResponse{Error: "Invalid verification code"}, nil
	}

	member, err := s.members.FindByMobile(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return &domain.MemberLoginResponse{Error: "Mobile number not registered"}, nil
		}
		return nil, err
	}

	if !member.IsVerified {
		if err := s.members.MarkVerified(ctx, member.ID); err != nil {
			s.logger.Warn("failed to mark member verified", zap.String("member_id", member.ID), zap.Error(err))
		}
	}

	s.audit.LogEvent(domain.NewAuditEvent(domain.MemberLoginEvent).WithSubject(member.ID).WithMobile(mobileNumber))
	return &domain.MemberLoginResponse{
		Success: true,
		Member: &domain.MemberPayload{
			ID:           member.ID,
			MobileNumber: member.MobileNumber,
			Name:         member.Name,
		},
	}, nil
}

// FindClientByMobile implements domain.RemoteDataService
func (s *Service) FindClientByMobile(ctx context.Context, mobileNumber string) (*domain.ClientRecord, error) {
	return s.clients.FindByMobile(ctx, mobileNumber)
}

// ActiveCategories implements domain.RemoteDataService
func (s *Service) ActiveCategories(ctx context.Context) ([]domain.EmploymentCategory, error) {
	return s.categories.ListActive(ctx)
}

// RegistrationsByClientAndCategory implements domain.RemoteDataService
func (s *Service) RegistrationsByClientAndCategory(ctx context.Context, clientID, categoryID string) ([]domain.EmploymentRegistration, error) {
	return s.registrations.FindByClientAndCategory(ctx, clientID, categoryID)
}

// ActiveRegistrationsByMobile implements domain.RemoteDataService
func (s *Service) ActiveRegistrationsByMobile(ctx context.Context, mobileNumber string) ([]domain.EmploymentRegistration, error) {
	return s.registrations.FindActiveByMobile(ctx, mobileNumber)
}

// CreateRegistration implements domain.RemoteDataService
func (s *Service) CreateRegistration(ctx context.Context, reg *domain.EmploymentRegistration) error {
	if err := s.registrations.Create(ctx, reg); err != nil {
		s.audit.LogEvent(domain.NewAuditEvent(domain.RegistrationDeniedEvent).WithSubject(reg.ClientID).WithMobile(reg.MobileNumber).WithError(err))
		return err
	}
	s.audit.LogEvent(domain.NewAuditEvent(domain.RegistrationEvent).WithSubject(reg.ClientID).WithMobile(reg.MobileNumber))
	return nil
}
