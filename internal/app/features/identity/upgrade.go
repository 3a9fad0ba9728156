// internal/app/features/identity/upgrade.go
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
	"github.com/pasaporteapp/pasaporte/internal/app/system/timeouts"
	"github.com/pasaporteapp/pasaporte/internal/app/system/txn"
	"github.com/pasaporteapp/pasaporte/internal/domain/roster"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasscodeLen = 4

type upgradeRequest struct {
	DisplayName string `json:"display_name"`
	Passcode    string `json:"passcode"`
}

// HandleUpgrade handles POST /me/upgrade: attach a display name and
// passcode to the current anonymous id so it can be recovered from
// another device. First writer wins; a second upgrade is a 409.
func (h *Handler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httperr.Unauthorized(w, "no session")
		return
	}

	var req upgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w, "malformed JSON body")
		return
	}

	name := normalize.DisplayName(req.DisplayName)
	if name == "" {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "display_name", Reason: "must not be empty"})
		return
	}
	if len(req.Passcode) < minPasscodeLen {
		httperr.Write(w, h.Log, &roster.ValidationError{Field: "passcode", Reason: "must be at least 4 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Passcode), bcrypt.DefaultCost)
	if err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The upgrade record and the leaderboard name move together.
	err = txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		if _, err := h.Identities.Upgrade(ctx, user.ID, name, hash); err != nil {
			return err
		}
		return h.Stats.SetDisplayName(ctx, user.ID, name)
	})
	if err != nil {
		if errors.Is(err, identitystore.ErrAlreadyUpgraded) {
			httperr.Conflict(w, "already upgraded")
			return
		}
		httperr.Write(w, h.Log, err)
		return
	}

	user.DisplayName = name
	user.Upgraded = true
	if err := auth.SaveUser(w, r, user); err != nil {
		h.Log.Warn("failed to save session after upgrade",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	h.Log.Info("identity upgraded", zap.String("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(profileResponse{
		UserID:      user.ID,
		DisplayName: name,
		Upgraded:    true,
	})
}
