package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"

	"github.com/Domenick1991/sunshinehotel/internal/clock"
	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/Domenick1991/sunshinehotel/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (*domain.Session, string, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

type API interface {
	Signup(ctx context.Context, in hotelapi.SignupInput) (string, error)
	Login(ctx context.Context, in hotelapi.LoginInput) (hotelapi.LoginResult, error)
}

type SessionStore interface {
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	SaveSession(ctx context.Context, sess *domain.Session) error
	DeleteSession(ctx context.Context, id string) error
}

// AdminAccount is the single dashboard account; PasswordHash is bcrypt.
type AdminAccount struct {
	ID           string
	Email        string
	PasswordHash string
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	AdminID  string `json:"adminId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	api       API
	sessions  SessionStore
	admin     AdminAccount
	validator *validation.Validator
	clock     clock.Clock
}

func NewAuthService(api API, sessions SessionStore, admin AdminAccount, c clock.Clock) *AuthService {
	if c == nil {
		c = clock.NewSystem()
	}
	return &AuthService{
		api:       api,
		sessions:  sessions,
		admin:     admin,
		validator: validation.New(),
		clock:     c,
	}
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}
	return s.api.Signup(ctx, hotelapi.SignupInput{Name: req.Name, Email: req.Email, Password: req.Password})
}

// Login authenticates against the hotel API and opens a guest session holding its token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.Session, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", err
	}
	res, err := s.api.Login(ctx, hotelapi.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, "", err
	}
	if res.Token == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		GuestID:   res.GuestID,
		Name:      res.Name,
		Email:     res.Email,
		Token:     res.Token,
		Role:      domain.RoleGuest,
		CreatedAt: s.clock.Now(),
	}
	if sess.Email == "" {
		sess.Email = req.Email
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, "", err
	}
	log.Printf("guest %s logged in, session %s", sess.GuestID, sess.ID)
	return sess, res.Message, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, req AdminLoginRequest) (*domain.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if !s.checkAdmin(req) {
		log.Printf("rejected admin login for %s", req.Email)
		return nil, domain.ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		GuestID:   s.admin.ID,
		Name:      "Administrator",
		Email:     s.admin.Email,
		Role:      domain.RoleAdmin,
		CreatedAt: s.clock.Now(),
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) checkAdmin(req AdminLoginRequest) bool {
	if s.admin.PasswordHash == "" {
		return false
	}
	idOK := subtle.ConstantTimeCompare([]byte(req.AdminID), []byte(s.admin.ID)) == 1
	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)) == nil
	return idOK && emailOK && passOK
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, sessionID)
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			log.Printf("failed to load session %s: %v", sessionID, err)
		}
		return nil, err
	}
	return sess, nil
}

var _ AuthUseCase = (*AuthService)(nil)
