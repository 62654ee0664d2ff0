package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/blog-platform/internal/models"
	"github.com/rogerio-castellano/blog-platform/internal/repo"
)

// RegisterHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "username, email and password"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationResult
// @Failure 409 {object} MessageResponse "Email already registered"
// @Failure 500 {string} string "Server error"
// @Router /register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateRegistration(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, ValidationResult{Errors: validationErrors})
		return
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.WithError(err).Error("failed to hash password")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	user, err := s.users.Create(r.Context(), models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			writeJSON(w, http.StatusConflict, MessageResponse{Message: "Email already registered"})
			return
		}
		s.log.WithError(err).Error("failed to create user")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).
		Info("user registered")
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// LoginHandler godoc
// @Summary Authenticate a user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {object} MessageResponse "Invalid credentials"
// @Failure 429 {object} MessageResponse "Locked out"
// @Failure 500 {string} string "Server error"
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if s.guard != nil {
		blocked, err := s.guard.Blocked(r.Context(), req.Email)
		if err != nil {
			// Fail open: a guard-store outage must not take logins down.
			s.log.WithError(err).Warn("login guard unavailable")
		} else if blocked {
			writeJSON(w, http.StatusTooManyRequests,
				MessageResponse{Message: "Too many failed login attempts, try again later"})
			return
		}
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			// Same response as a wrong password so the email's existence
			// is not revealed.
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Invalid credentials"})
			return
		}
		s.log.WithError(err).Error("failed to look up user")
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		s.log.WithError(err).Error("failed to verify password")
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}
	if !ok {
		if s.guard != nil {
			if err := s.guard.RecordFailure(r.Context(), req.Email); err != nil {
				s.log.WithError(err).Warn("failed to record login failure")
			}
		}
		writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "Invalid credentials"})
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.WithError(err).Error("failed to issue token")
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	if s.guard != nil {
		if err := s.guard.Reset(r.Context(), req.Email); err != nil {
			s.log.WithError(err).Warn("failed to reset login strikes")
		}
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token})
}
