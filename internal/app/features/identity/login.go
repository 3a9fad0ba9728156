// internal/app/features/identity/login.go
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	identitystore "github.com/pasaporteapp/pasaporte/internal/app/store/identities"
	"github.com/pasaporteapp/pasaporte/internal/app/system/auth"
	"github.com/pasaporteapp/pasaporte/internal/app/system/httperr"
	"github.com/pasaporteapp/pasaporte/internal/app/system/normalize"
	"github.com/pasaporteapp/pasaporte/internal/app/system/ratelimit"
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	UserID   string `json:"user_id"`
	Passcode string `json:"passcode"`
}

// HandleLogin handles POST /me/login: re-attach an upgraded id to the
// current session. Unknown ids and wrong passcodes both come back as
// 401 so the endpoint does not confirm which ids exist.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	userID := normalize.UserID(req.UserID)
	if userID == "" || req.Passcode == "" {
		httperr.Unauthorized(w, "invalid credentials")
		return
	}

	if !h.Limiter.Check(r, userID) {
		h.Log.Warn("login throttled",
			zap.String("ip", ratelimit.ClientIP(r)),
			zap.String("user_id", userID))
		httperr.TooManyRequests(w, "too many login attempts, try again later")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rec, err := h.Identities.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, identitystore.ErrNotFound) {
			httperr.Unauthorized(w, "invalid credentials")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(rec.PasscodeHash, []byte(req.Passcode)); err != nil {
		httperr.Unauthorized(w, "invalid credentials")
		return
	}
	h.Limiter.ResetID(userID)

	user := &auth.SessionUser{
		ID:          rec.UserID,
		DisplayName: rec.DisplayName,
		Upgraded:    true,
	}
	if err := auth.SaveUser(w, r, user); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("identity re-attached", zap.String("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profileResponse{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Upgraded:    true,
	})
}
