/*
Package api implements the thin REST client for the huecas backend.

This file covers the authentication surface: login, registration, the
password-reset flow, and profile operations. Login and Register satisfy the
session store's Authenticator port.
*/
package api

import (
	"context"

	"huecas/internal/app/session"
	"huecas/internal/app/user"
	"huecas/internal/pkg/errs"
)

// loginRequest is the wire shape of a login attempt.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the wire shape of an account registration.
type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login exchanges credentials for a token and user record. Rejections come
// back as authentication errors carrying the server's message verbatim.
func (c *Client) Login(ctx context.Context, email, password string) (*session.AuthResult, error) {
	var response AuthResponse

	if customErr := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &response); customErr != nil {
		return nil, asAuthError(customErr, errs.ErrInvalidCredentials)
	}

	return &session.AuthResult{Token: response.Token, User: response.User}, nil
}

// Register creates a new account. The server is the sole authority on
// password and email validation for account creation.
func (c *Client) Register(ctx context.Context, name, email, password, confirmPassword string) (*session.AuthResult, error) {
	request := registerRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}

	var response AuthResponse
	if customErr := c.post(ctx, "/auth/register", request, &response); customErr != nil {
		return nil, asAuthError(customErr, errs.ErrRegistrationRejected)
	}

	return &session.AuthResult{Token: response.Token, User: response.User}, nil
}

// RequestPasswordReset asks the server to email a reset code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	if customErr := c.post(ctx, "/auth/password-reset-request", map[string]string{"email": email}, nil); customErr != nil {
		return customErr
	}
	return nil
}

// VerifyResetCode checks a reset code before the new password is entered.
func (c *Client) VerifyResetCode(ctx context.Context, email, resetCode string) error {
	body := map[string]string{
		"email":     email,
		"resetCode": resetCode,
	}

	if customErr := c.post(ctx, "/auth/verify-reset-code", body, nil); customErr != nil {
		return asAuthError(customErr, errs.ErrResetCodeInvalid)
	}
	return nil
}

// ResetPassword sets a new password using a previously verified reset code.
func (c *Client) ResetPassword(ctx context.Context, email, resetCode, newPassword, confirmPassword string) error {
	body := map[string]string{
		"email":           email,
		"resetCode":       resetCode,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}

	if customErr := c.post(ctx, "/auth/password-reset", body, nil); customErr != nil {
		return asAuthError(customErr, errs.ErrResetCodeInvalid)
	}
	return nil
}

// GetProfile fetches the current user's canonical profile.
func (c *Client) GetProfile(ctx context.Context) (user.User, error) {
	var profile user.User
	if customErr := c.get(ctx, "/auth/profile", &profile); customErr != nil {
		return user.User{}, customErr
	}
	return profile, nil
}

// UpdateProfile edits the current profile. The server answers with a fresh
// token/user pair which callers feed into Session.UpdateUser.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*AuthResponse, error) {
	var response AuthResponse
	if customErr := c.put(ctx, "/auth/profile", update, &response); customErr != nil {
		return nil, customErr
	}
	return &response, nil
}

// CompleteSetup finishes onboarding with the chosen food types and location.
// The server answers with a fresh token reflecting the completed profile.
func (c *Client) CompleteSetup(ctx context.Context, foodTypes []string, location string) (*AuthResponse, error) {
	body := map[string]any{
		"foodTypes": foodTypes,
		"location":  location,
	}

	var response AuthResponse
	if customErr := c.post(ctx, "/auth/profile/complete-setup", body, &response); customErr != nil {
		return nil, customErr
	}
	return &response, nil
}

// asAuthError re-codes a 4xx server rejection (other than 404) as the given
// authentication code, keeping the server message verbatim. Transport
// failures and missing resources pass through untouched.
func asAuthError(customErr *errs.CustomError, code int) *errs.CustomError {
	if customErr.Status < 400 || customErr.Status >= 500 || customErr.Kind == errs.KindNotFound {
		return customErr
	}

	recoded := errs.NewServerError(code, customErr.Status, customErr.Message)
	return recoded
}
