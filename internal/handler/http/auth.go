package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/utils"
	"github.com/melodia-app/melodia-server/models"
)

// invalidCredentialsMessage is the single body used for every failed
// authentication. Unknown email, ambiguous email and wrong password are
// indistinguishable to the client.
const invalidCredentialsMessage = "invalid email/password"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if !h.loginLimiter.Allow() {
		log.Warn().Msg("login rate limit exceeded")
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, err := h.services.AuthService.Resolve(ctx, creds.Email, creds.Password)
	if err != nil {
		// infrastructure failure must not be presented as bad credentials
		log.Err(err).Msg("credential resolution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if identity == nil {
		log.Info().Str("email", creds.Email).Msg("authentication failed")
		http.Error(w, invalidCredentialsMessage, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.Login(ctx, *identity, utils.ClientIP(r))
	if err != nil {
		log.Err(err).Int64("id", identity.ID).Msg("session issuance failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", identity.ID).Str("role", identity.Role).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString}, http.StatusOK)
}
