package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmisra/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/mmisra/sales-dashboard-api/pkg/apiErrors"
	"github.com/mmisra/sales-dashboard-api/pkg/log"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates the operator account and returns a session token.
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.Username == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "username and password are required", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrLoginDisabled) {
				logger.Warn("auth: login attempted but no operator account is configured")
				apiErrors.WriteError(w, apiErrors.ErrLoginDisabled, err.Error(), nil)
				return
			}

			logger.WithField("username", req.Username).Warn("auth: invalid credentials")
			apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)
			return
		}

		logger.WithField("username", req.Username).Info("auth: operator logged in")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(loginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("auth: failed to encode login response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
