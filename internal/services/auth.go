package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sparekeeper/internal/common"
	"github.com/dmitrijs2005/sparekeeper/internal/cryptox"
	"github.com/dmitrijs2005/sparekeeper/internal/logging"
	"github.com/dmitrijs2005/sparekeeper/internal/models"
	"github.com/dmitrijs2005/sparekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sparekeeper/internal/store"
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 7 * 24 * time.Hour

const sessionTokenBytes = 32

// AuthService handles login, registration and session resolution.
type AuthService struct {
	store  *store.Store
	repos  repomanager.RepositoryManager
	hasher cryptox.PasswordHasher
	ttl    time.Duration
	logger logging.Logger
	now    func() time.Time
}

func NewAuthService(st *store.Store, rm repomanager.RepositoryManager, hasher cryptox.PasswordHasher, ttl time.Duration, logger logging.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		store:  st,
		repos:  rm,
		hasher: hasher,
		ttl:    ttl,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source used for session expiry.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// HashPassword returns the storage encoding of plain.
func (s *AuthService) HashPassword(plain string) (string, error) {
	return s.hasher.Hash([]byte(plain))
}

func normalizeServiceNumber(sn string) string {
	return strings.ToUpper(strings.TrimSpace(sn))
}

// Login checks the credentials and opens a new session. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, serviceNumber, password string) (*models.User, string, error) {
	sn := normalizeServiceNumber(serviceNumber)
	if sn == "" || password == "" {
		return nil, "", common.ErrInvalidCredentials
	}

	db := s.store.DB()
	u, err := s.repos.Users(db).GetByServiceNumber(ctx, sn)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", common.ErrInvalidCredentials
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	ok, err := s.hasher.Verify(pw, u.PasswordHash)
	if err != nil {
		s.logger.Warn(ctx, "stored password hash unreadable", "user_id", u.ID, "error", err)
		return nil, "", common.ErrInvalidCredentials
	}
	if !ok {
		return nil, "", common.ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u, pw)
	}

	if _, err := s.PurgeExpired(ctx); err != nil {
		s.logger.Warn(ctx, "failed to purge expired sessions", "error", err)
	}

	token, err := s.openSession(ctx, db, u.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info(ctx, "user logged in", "user_id", u.ID, "service_number", u.ServiceNumber)
	return u.Sanitized(), token, nil
}

// rehash upgrades a legacy or weak hash after a successful login. Failure
// leaves the old hash in place.
func (s *AuthService) rehash(ctx context.Context, u *models.User, pw []byte) {
	hash, err := s.hasher.Hash(pw)
	if err == nil {
		err = s.repos.Users(s.store.DB()).UpdatePasswordHash(ctx, u.ID, hash, s.now())
	}
	if err != nil {
		s.logger.Warn(ctx, "failed to upgrade password hash", "user_id", u.ID, "error", err)
		return
	}
	s.logger.Info(ctx, "password hash upgraded", "user_id", u.ID)
}

// Register creates a user and logs them in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	req.ServiceNumber = normalizeServiceNumber(req.ServiceNumber)
	req.Name = strings.TrimSpace(req.Name)
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if err := validateRequest(req); err != nil {
		return nil, "", err
	}

	existing, err := s.repos.Users(s.store.DB()).GetByServiceNumber(ctx, req.ServiceNumber)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", common.ErrServiceNumberTaken
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	u := &models.User{
		ServiceNumber: req.ServiceNumber,
		Name:          req.Name,
		PasswordHash:  hash,
		Role:          req.Role,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var token string
	err = s.store.WithTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		if err := s.repos.Users(tx).Create(ctx, u); err != nil {
			if store.IsUniqueViolation(err) {
				return common.ErrServiceNumberTaken
			}
			return err
		}
		var err error
		token, err = s.openSession(ctx, tx, u.ID)
		return err
	})
	if err != nil {
		return nil, "", err
	}
	s.logger.Info(ctx, "user registered", "user_id", u.ID, "service_number", u.ServiceNumber, "role", u.Role)
	return u.Sanitized(), token, nil
}

func (s *AuthService) openSession(ctx context.Context, db store.DBTX, userID int64) (string, error) {
	token, err := common.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	now := s.now()
	sess := &models.Session{UserID: userID, Token: token, ExpiresAt: now.Add(s.ttl), CreatedAt: now}
	if err := s.repos.Sessions(db).Create(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

// Logout ends the session for token. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repos.Sessions(s.store.DB()).DeleteByToken(ctx, token)
}

// Resolve returns the user owning an unexpired session for token, or
// common.ErrNoSession.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.ErrNoSession
	}
	db := s.store.DB()
	sess, err := s.repos.Sessions(db).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.ErrNoSession
	}
	if !sess.Valid(s.now()) {
		if err := s.repos.Sessions(db).DeleteByToken(ctx, token); err != nil {
			s.logger.Warn(ctx, "failed to drop expired session", "user_id", sess.UserID, "error", err)
		}
		return nil, common.ErrNoSession
	}
	u, err := s.repos.Users(db).GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNoSession
	}
	return u.Sanitized(), nil
}

// CurrentUser resolves the session token carried by ctx.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	u, err := s.Resolve(ctx, SessionToken(ctx))
	if errors.Is(err, common.ErrNoSession) {
		return nil, common.ErrNotAuthenticated
	}
	return u, err
}

func (s *AuthService) CurrentUserID(ctx context.Context) (int64, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *AuthService) IsAdmin(ctx context.Context) bool {
	u, err := s.CurrentUser(ctx)
	return err == nil && u.Role == models.RoleAdmin
}

// requireWriter returns the acting user if they may modify inventory data.
func (s *AuthService) requireWriter(ctx context.Context) (*models.User, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !u.Role.CanWrite() {
		return nil, common.ErrUnauthorized
	}
	return u, nil
}

func (s *AuthService) requireAdmin(ctx context.Context) (*models.User, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleAdmin {
		return nil, common.ErrUnauthorized
	}
	return u, nil
}

// PurgeExpired deletes every session whose expiry has passed.
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repos.Sessions(s.store.DB()).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Debug(ctx, "expired sessions purged", "count", n)
	}
	return n, nil
}

// RunSessionJanitor purges expired sessions every interval until ctx is
// done. A non-positive interval disables it.
func (s *AuthService) RunSessionJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PurgeExpired(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn(ctx, "session janitor failed", "error", err)
			}
		}
	}
}
