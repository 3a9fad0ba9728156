package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"go.uber.org/zap"
)

func initTestStore(t *testing.T) {
	t.Helper()
	if err := auth.InitSessionStore("test-session-key-must-be-32-chars-long", "", false, zap.NewNop()); err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
}

func TestEnsureUser_MintsIDForFirstVisit(t *testing.T) {
	initTestStore(t)

	var got *auth.SessionUser
	handler := auth.EnsureUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/places", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil || got.ID == "" {
		t.Fatal("expected a minted user id in context")
	}
	if got.Upgraded || got.DisplayName != "" {
		t.Errorf("first-time visitor should be anonymous, got %+v", got)
	}

	// The id must be persisted in a cookie for the next visit.
	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == auth.SessionName {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s cookie to be set, got %v", auth.SessionName, cookies)
	}
}

func TestEnsureUser_RecognizesReturningVisitor(t *testing.T) {
	initTestStore(t)

	var first, second *auth.SessionUser
	handler := auth.EnsureUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := auth.CurrentUser(r)
		if first == nil {
			first = u
		} else {
			second = u
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/places", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Replay the session cookie on a second request.
	req = httptest.NewRequest("GET", "/passport", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if second == nil {
		t.Fatal("second request never saw a user")
	}
	if second.ID != first.ID {
		t.Errorf("returning visitor got a new id: %s != %s", second.ID, first.ID)
	}
}

func TestSaveUser_RoundTrip(t *testing.T) {
	initTestStore(t)

	// Save an upgraded identity on one request.
	req := httptest.NewRequest("POST", "/me/upgrade", nil)
	rec := httptest.NewRecorder()
	saved := &auth.SessionUser{ID: "user-1", DisplayName: "Ana", Upgraded: true}
	if err := auth.SaveUser(rec, req, saved); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	// The next request with that cookie sees the upgraded state.
	var got *auth.SessionUser
	handler := auth.EnsureUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))

	req = httptest.NewRequest("GET", "/me", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("no user in context")
	}
	if got.ID != "user-1" || got.DisplayName != "Ana" || !got.Upgraded {
		t.Errorf("session round trip: got %+v", got)
	}
}

func TestInitSessionStore_RejectsEmptyKey(t *testing.T) {
	if err := auth.InitSessionStore("", "", false, zap.NewNop()); err == nil {
		t.Error("expected empty session key to be rejected")
	}
}

func TestCurrentUser_MissingUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/places", nil)
	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user on a bare request")
	}
}

func TestWithTestUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/places", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "user-1"})

	u, ok := auth.CurrentUser(req)
	if !ok || u.ID != "user-1" {
		t.Errorf("WithTestUser: got %+v, ok=%v", u, ok)
	}
}
