package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	KeyAuthToken   = "auth_token"
	KeyUserEmail   = "user_email"
	KeyOfflineMode = "auth_offline_mode"
	KeyLastEmail   = "last_email"

	offlineTokenPrefix = "offline_"
)

// SessionService owns the signed-in identity. Offline sessions carry a local
// placeholder token that is never sent to a server.
type SessionService struct {
	auth  ports.AuthGateway
	store ports.StateStore
	clock ports.Clock
	log   logrus.FieldLogger

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionService(auth ports.AuthGateway, store ports.StateStore, clock ports.Clock, log logrus.FieldLogger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &SessionService{
		auth:    auth,
		store:   store,
		clock:   clock,
		log:     log,
		session: domain.Session{State: domain.SessionLoggedOut},
	}
}

// Load restores the persisted session. Expired server tokens are discarded.
func (s *SessionService) Load(ctx context.Context) domain.Session {
	var token, email string
	var offline bool
	s.store.Load(ctx, KeyAuthToken, &token)
	s.store.Load(ctx, KeyUserEmail, &email)
	s.store.Load(ctx, KeyOfflineMode, &offline)

	session := domain.Session{State: domain.SessionLoggedOut}
	switch {
	case strings.TrimSpace(token) == "":
	case offline || strings.HasPrefix(token, offlineTokenPrefix):
		session = domain.Session{
			State:      domain.SessionOfflineLoggedIn,
			Credential: domain.Credential{Token: token, Identity: email},
		}
	case tokenExpired(token, s.clock.Now()):
		s.log.WithField("identity", email).Info("stored session expired")
		s.clearCredential(ctx)
	default:
		session = domain.Session{
			State:      domain.SessionLoggedIn,
			Credential: domain.Credential{Token: token, Identity: email},
		}
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return session
}

func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// AuthToken is the token to present to the backend; empty unless the session
// holds a server-issued credential.
func (s *SessionService) AuthToken() string {
	session := s.Current()
	if !session.IsAuthenticated() {
		return ""
	}
	return session.Credential.Token
}

func (s *SessionService) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	cmd, err := cmd.normalized()
	if err != nil {
		return LoginResult{}, err
	}

	token, err := s.auth.Login(ctx, cmd.Email, cmd.Password)
	if err == nil {
		session := domain.Session{
			State:      domain.SessionLoggedIn,
			Credential: domain.Credential{Token: token, Identity: cmd.Email},
		}
		s.persist(ctx, session)
		s.store.Save(ctx, KeyLastEmail, cmd.Email)
		return LoginResult{Session: session}, nil
	}

	if !domain.IsConnectivityError(err) {
		return LoginResult{}, err
	}

	return s.offlineLogin(ctx, cmd.Email, err)
}

func (s *SessionService) offlineLogin(ctx context.Context, email string, cause error) (LoginResult, error) {
	var lastEmail string
	if !s.store.Load(ctx, KeyLastEmail, &lastEmail) || lastEmail == "" || lastEmail != email {
		return LoginResult{}, fmt.Errorf("%w: %w", domain.ErrOfflineIdentityMismatch, cause)
	}

	session := domain.Session{
		State:      domain.SessionOfflineLoggedIn,
		Credential: domain.Credential{Token: offlineTokenPrefix + uuid.NewString(), Identity: email},
	}
	s.persist(ctx, session)
	s.log.WithError(cause).WithField("identity", email).Warn("backend unreachable, signed in offline")

	return LoginResult{Session: session, Offline: true}, nil
}

// Logout clears the credential but keeps the last signed-in email so a later
// offline sign-in can be matched against it.
func (s *SessionService) Logout(ctx context.Context) {
	s.clearCredential(ctx)

	s.mu.Lock()
	s.session = domain.Session{State: domain.SessionLoggedOut}
	s.mu.Unlock()
}

func (s *SessionService) LastEmail(ctx context.Context) string {
	var email string
	s.store.Load(ctx, KeyLastEmail, &email)
	return email
}

func (s *SessionService) persist(ctx context.Context, session domain.Session) {
	s.store.Save(ctx, KeyAuthToken, session.Credential.Token)
	s.store.Save(ctx, KeyUserEmail, session.Credential.Identity)
	s.store.Save(ctx, KeyOfflineMode, session.IsOffline())

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

func (s *SessionService) clearCredential(ctx context.Context) {
	s.store.Remove(ctx, KeyAuthToken)
	s.store.Remove(ctx, KeyUserEmail)
	s.store.Remove(ctx, KeyOfflineMode)
}

// tokenExpired reads the exp claim of JWT-shaped tokens without verifying
// them. Opaque tokens never expire locally.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !now.Before(exp.Time)
}
