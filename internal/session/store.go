// Package session is the single source of truth for "who is logged in".
// The persisted state is exactly two values in a cookie session: the bearer
// token and the serialized current user. Both are written on login and
// cleared on logout or on any upstream 401.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/upstream"
)

const (
	sessionName = "storefront_session"
	keyToken    = "token"
	keyUser     = "user"
)

// UsersAPI is the slice of the upstream client the session manager needs.
type UsersAPI interface {
	Login(ctx context.Context, email, password string) (upstream.LoginResult, error)
	Register(ctx context.Context, req upstream.RegisterRequest) (domain.User, error)
}

type Manager struct {
	cookies *sessions.CookieStore
	users   UsersAPI
	now     func() time.Time
}

func NewManager(secret []byte, users UsersAPI) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		cookies: store,
		users:   users,
		now:     time.Now,
	}
}

// Session is the restored view of the persisted state. A session with an
// expired or missing token is indistinguishable from being logged out, even
// when a user record is still persisted.
type Session struct {
	Token string
	User  domain.User
	valid bool
}

func (s Session) IsAuthenticated() bool {
	return s.valid
}

func (s Session) IsAdmin() bool {
	return s.valid && s.User.Role == domain.RoleAdmin
}

// Current restores the session from the request. The token's expiry claim
// is checked locally; no upstream call is made at restore time.
func (m *Manager) Current(r *http.Request) Session {
	raw, _ := m.cookies.Get(r, sessionName)

	token, _ := raw.Values[keyToken].(string)
	if token == "" || !tokenAlive(token, m.now()) {
		return Session{}
	}

	userJSON, _ := raw.Values[keyUser].(string)
	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return Session{}
	}
	return Session{Token: token, User: user, valid: true}
}

// Login authenticates against the upstream and persists token + user.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, email, password string) (domain.User, error) {
	res, err := m.users.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	userJSON, err := json.Marshal(res.User)
	if err != nil {
		return domain.User{}, err
	}

	raw, _ := m.cookies.Get(r, sessionName)
	raw.Values[keyToken] = res.Token
	raw.Values[keyUser] = string(userJSON)
	if err := raw.Save(r, w); err != nil {
		return domain.User{}, err
	}
	return res.User, nil
}

// Register creates the account upstream. It does not log the user in.
func (m *Manager) Register(ctx context.Context, req upstream.RegisterRequest) (domain.User, error) {
	return m.users.Register(ctx, req)
}

// RefreshUser rewrites the persisted user record after a profile update.
func (m *Manager) RefreshUser(w http.ResponseWriter, r *http.Request, user domain.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	raw, _ := m.cookies.Get(r, sessionName)
	raw.Values[keyUser] = string(userJSON)
	return raw.Save(r, w)
}

// Logout clears both persisted values and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	raw, _ := m.cookies.Get(r, sessionName)
	delete(raw.Values, keyToken)
	delete(raw.Values, keyUser)
	raw.Options.MaxAge = -1
	_ = raw.Save(r, w)
}

// Clear is the 401 path: identical to Logout, named for intent.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	m.Logout(w, r)
}
