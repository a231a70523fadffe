package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"viewify/internal/model"
	"viewify/internal/repository"
	"viewify/internal/rpc"
)

const bcryptCost = 10

// SessionCookieName is the cookie the dashboard falls back to when no
// Authorization header is present.
const SessionCookieName = "viewify.session"

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// Service owns the user lifecycle and session resolution. The RPC layer
// only ever consumes it through rpc.SessionResolver.
type Service interface {
	rpc.SessionResolver

	SignUp(ctx context.Context, email, password, name string) (*model.User, string, error)
	SignIn(ctx context.Context, email, password string) (string, *model.User, error)
	SignOut(ctx context.Context, token string) error
	UpdateUser(ctx context.Context, userID, name string) (*model.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, userID, password string) error
}

type service struct {
	users      repository.UserRepository
	jwtService *JWTService
	sessions   SessionStoreInterface
}

// NewService creates the auth service.
func NewService(users repository.UserRepository, jwtService *JWTService, sessions SessionStoreInterface) Service {
	return &service{
		users:      users,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// SignUp creates a user with a hashed password and opens a session.
func (s *service) SignUp(ctx context.Context, email, password, name string) (*model.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn authenticates a user and opens a session.
func (s *service) SignIn(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *service) openSession(ctx context.Context, user *model.User) (string, error) {
	tokenID, token, err := s.jwtService.GenerateSessionToken(user.ID.String(), user.Email)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	record := SessionRecord{UserID: user.ID.String(), Email: user.Email}
	if err := s.sessions.Put(ctx, tokenID, record, SessionExpiry); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// SignOut deletes the session record behind the token. An unparseable
// token has no session to delete and is not an error.
func (s *service) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// GetSession resolves a session from raw request headers. A missing,
// invalid, revoked, or mismatched token resolves to (nil, nil): anonymous,
// not an error. This implements rpc.SessionResolver.
func (s *service) GetSession(ctx context.Context, headers http.Header) (*rpc.Session, error) {
	token := TokenFromHeaders(headers)
	if token == "" {
		return nil, nil
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	// The signature alone is not enough: sign-out revokes by deleting the
	// server-side record.
	record, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != claims.UserID {
		return nil, nil
	}
	return &rpc.Session{UserID: record.UserID}, nil
}

// UpdateUser changes the display name.
func (s *service) UpdateUser(ctx context.Context, userID, name string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// DeleteUser verifies the password and removes the row. Open sessions are
// not swept; their records lapse by TTL and resolve to anonymous.
func (s *service) DeleteUser(ctx context.Context, userID, password string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return s.users.Delete(ctx, id)
}

// TokenFromHeaders extracts the session token: Authorization bearer first,
// session cookie as fallback.
func TokenFromHeaders(headers http.Header) string {
	if authz := headers.Get("Authorization"); authz != "" {
		if strings.HasPrefix(authz, "Bearer ") {
			return strings.TrimPrefix(authz, "Bearer ")
		}
		return ""
	}
	req := http.Request{Header: headers}
	if cookie, err := req.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
