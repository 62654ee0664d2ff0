package handlers

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegistration(req RegisterRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, ValidationError{Field: "username", Description: "Username is required"})
	}
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, ValidationError{Field: "email", Description: "Please include a valid email"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, ValidationError{Field: "password", Description: "Please enter a password with 6 or more characters"})
	}
	return errs
}
