package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
 | Session constants & globals                                                |
 *─────────────────────────────────────────────────────────────────────────────*/

const (
	SessionName = "pasaporte-session"

	userIDKey      = "user_id"
	displayNameKey = "display_name"
	upgradedKey    = "upgraded"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

/*─────────────────────────────────────────────────────────────────────────────*
 | Current-User helper                                                        |
 *─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache in the session & inject into r.Context().
// Every visitor has one; DisplayName and Upgraded are only set after the
// user attaches a name and passcode to their id.
type SessionUser struct {
	ID          string
	DisplayName string
	Upgraded    bool
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & “found?” flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// EnsureUser guarantees every request carries a user id. First-time
// visitors get a fresh UUID persisted in the session cookie; returning
// visitors are recognized by the id already stored there. If the session
// store has not been initialized yet, it is a no-op.
func EnsureUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Store == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := Store.Get(r, SessionName)

		id := getString(sess, userIDKey)
		if id == "" {
			id = uuid.NewString()
			sess.Values[userIDKey] = id
			// Best effort: if the cookie cannot be written the request
			// still proceeds with a one-shot id.
			_ = sess.Save(r, w)
		}

		u := &SessionUser{
			ID:          id,
			DisplayName: getString(sess, displayNameKey),
		}
		u.Upgraded, _ = sess.Values[upgradedKey].(bool)

		next.ServeHTTP(w, withUser(r, u))
	})
}

// SaveUser writes the user's current identity back into the session.
// Called after an upgrade or login so later requests see the new state.
func SaveUser(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[userIDKey] = u.ID
	sess.Values[displayNameKey] = u.DisplayName
	sess.Values[upgradedKey] = u.Upgraded
	return sess.Save(r, w)
}

// InitSessionStore initializes the global session Store using the provided
// session key and domain. The `secure` flag controls whether cookies are
// marked Secure and which SameSite mode is used.
//
// In production (secure=true), cookies should be Secure + SameSite=None
// (for cross-site use with HTTPS).
// In local dev over http://localhost, use secure=false so cookies are accepted.
func InitSessionStore(sessionKey, domain string, secure bool, logger *zap.Logger) error {
	if sessionKey == "" {
		return fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}

	// SameSite handling: in prod with Secure cookies, we use None
	// so cookies can be sent in cross-site contexts. In dev, Lax is fine.
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}

	store.Options = opts
	Store = store

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return nil
}

// WithTestUser injects a user directly into the request context,
// bypassing the session middleware. Tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
