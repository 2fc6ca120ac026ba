package auth

import (
	"context"

	autherrors "staffdesk/internal/auth/errors"
	"staffdesk/internal/employee"
	"staffdesk/internal/session"
	"staffdesk/internal/shared/apperror"
	"staffdesk/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminDashboardPath    = "/admin_dashboard/"
	EmployeeDashboardPath = "/employee_dashboard/"
)

// dummyHash soaks up a bcrypt comparison when the email does not
// resolve, keeping the unknown-email and wrong-password paths close in
// timing as well as in response.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("staffdesk.invalid.credential"), bcrypt.DefaultCost)

type Service interface {
	Login(ctx context.Context, email, password string) (session.Session, LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, employeeID uint) (employee.Response, error)
}

type service struct {
	directory employee.Directory
	sessions  *session.Manager
	logger    *zap.Logger
}

func NewService(directory employee.Directory, sessions *session.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		directory: directory,
		sessions:  sessions,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (session.Session, LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	emp, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		log.Warn("login failed", zap.String("email", email))
		return session.Session{}, LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		log.Warn("login failed", zap.String("email", email))
		return session.Session{}, LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	sess, err := s.sessions.Issue(ctx, emp.ID, emp.Email, emp.Role)
	if err != nil {
		return session.Session{}, LoginResponse{}, err
	}

	log.Info("login success",
		zap.Uint("employee_id", emp.ID),
		zap.String("role", emp.Role),
	)

	return sess, LoginResponse{
		ID:       emp.ID,
		Name:     emp.Name,
		Email:    emp.Email,
		Role:     emp.Role,
		Redirect: DashboardFor(emp.Role),
	}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessions.Terminate(ctx, token)
}

func (s *service) Me(ctx context.Context, employeeID uint) (employee.Response, error) {
	emp, err := s.directory.FindByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, apperror.ErrUnauthorized
	}
	return employee.ToResponse(emp), nil
}

// DashboardFor picks the post-login landing page; role only ever decides
// this, not what an authenticated employee may do.
func DashboardFor(role string) string {
	if role == employee.RoleSuperAdmin {
		return AdminDashboardPath
	}
	return EmployeeDashboardPath
}
