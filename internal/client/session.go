package client

import (
	"context"
	"errors"
	"sync"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

// SessionState is a point-in-time view of the session. Identity is nil
// when nobody is signed in; Role is resolved right after the identity
// is confirmed; Loading is true until the initial lookup has settled;
// Err is set when that lookup failed for a reason other than being
// signed out, and clears on the next successful sign-in.
type SessionState struct {
	Identity *Identity
	Role     model.Role
	Loading  bool
	Err      error
}

// GateInputFor shapes the state for the authorization gate guarding a
// path.
func (s SessionState) GateInputFor(requireAdmin bool, from string) GateInput {
	return GateInput{
		Loading:      s.Loading,
		Err:          s.Err,
		Identity:     s.Identity,
		RequireAdmin: requireAdmin,
		IsAdmin:      s.Identity != nil && s.Role == model.RoleAdmin,
		From:         from,
	}
}

// SessionStore tracks the signed-in user and fans state changes out to
// subscribers. All methods are safe for concurrent use.
type SessionStore struct {
	api    AuthAPI
	logger *logger.Logger

	mu       sync.Mutex
	state    SessionState
	subs     map[int]func(SessionState)
	nextSub  int
	closed   bool
	initOnce sync.Once
}

func NewSessionStore(api AuthAPI, l *logger.Logger) *SessionStore {
	return &SessionStore{
		api:    api,
		logger: l,
		state:  SessionState{Loading: true},
		subs:   make(map[int]func(SessionState)),
	}
}

// Initialize resolves the current session once. Repeated calls are
// no-ops, so views can all trigger it without duplicating lookups.
// Being signed out settles as anonymous; any other failure is stored
// on the state so guarded views surface it instead of redirecting to
// login. A later successful sign-in clears it.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		identity, role, err := s.api.Me(ctx)
		switch {
		case errors.Is(err, ErrUnauthenticated):
			s.logger.Debug("session: no active session", "error", err.Error())
			s.setState(SessionState{Loading: false})
		case err != nil:
			s.logger.Error("session: initialization failed", "error", err.Error())
			s.setState(SessionState{Loading: false, Err: err})
		default:
			if role == "" {
				role = model.RoleUser
			}
			s.setState(SessionState{Identity: &identity, Role: role, Loading: false})
		}
	})
}

// Snapshot returns the current state.
func (s *SessionStore) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a callback invoked on every state change. The
// returned function removes the subscription; it is safe to call more
// than once.
func (s *SessionStore) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Close stops all future publishes. Subscribers registered before Close
// are never invoked again, even if a slow sign-in lands afterwards.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]func(SessionState))
}

func (s *SessionStore) setState(state SessionState) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = state
	subs := make([]func(SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// SignIn authenticates, resolves the role, and publishes both. On
// failure the previous state is left untouched.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) error {
	identity, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.setState(SessionState{Identity: &identity, Role: s.resolveRole(ctx), Loading: false})
	return nil
}

// SignUp registers a new account and publishes the identity and role.
func (s *SessionStore) SignUp(ctx context.Context, email, password string) error {
	identity, err := s.api.SignUp(ctx, email, password)
	if err != nil {
		return err
	}
	s.setState(SessionState{Identity: &identity, Role: s.resolveRole(ctx), Loading: false})
	return nil
}

// resolveRole looks the role up once the identity is confirmed. A
// failed lookup downgrades to the plain user role; elevated access is
// never granted on doubt.
func (s *SessionStore) resolveRole(ctx context.Context) model.Role {
	_, role, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Error("session: role lookup failed, treating as non-admin", "error", err.Error())
		return model.RoleUser
	}
	if role == "" {
		return model.RoleUser
	}
	return role
}

// SignOut ends the session. The signed-in state is kept when the server
// call fails, so the view never claims a sign-out that didn't happen.
func (s *SessionStore) SignOut(ctx context.Context) error {
	if err := s.api.SignOut(ctx); err != nil {
		s.logger.Error("session: sign-out failed", "error", err.Error())
		return err
	}
	s.setState(SessionState{Loading: false})
	return nil
}

// IsAdmin reports whether the published session carries the admin
// role. The role is resolved when the session is established, so this
// is a snapshot read, not a network round trip.
func (s *SessionStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Identity != nil && s.state.Role == model.RoleAdmin
}
