package upstream

import (
	"context"

	"github.com/noah-isme/interview-console/internal/models"
)

// StudentLoginRequest carries student credentials to the platform API.
type StudentLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest carries admin credentials to the platform API.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginResponse is the bearer token handed back on admin login.
type AdminLoginResponse struct {
	Token   string               `json:"access_token"`
	Profile *models.AdminProfile `json:"profile"`
}

// StudentLogin exchanges credentials for a student session object.
func (c *Client) StudentLogin(ctx context.Context, req StudentLoginRequest) (*models.StudentSession, error) {
	var session models.StudentSession
	if err := c.postJSON(ctx, "/api/auth/student/login", "", req, &session, "login failed"); err != nil {
		return nil, err
	}
	return &session, nil
}

// AdminLogin exchanges credentials for an admin bearer token and profile.
func (c *Client) AdminLogin(ctx context.Context, req AdminLoginRequest) (*AdminLoginResponse, error) {
	var resp AdminLoginResponse
	if err := c.postJSON(ctx, "/api/auth/admin/login", "", req, &resp, "login failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminLogout invalidates the bearer token upstream.
func (c *Client) AdminLogout(ctx context.Context, token string) error {
	return c.postJSON(ctx, "/api/auth/admin/logout", token, struct{}{}, nil, "logout failed")
}

// AdminProfile fetches the profile of the authenticated admin.
func (c *Client) AdminProfile(ctx context.Context, token string) (*models.AdminProfile, error) {
	var profile models.AdminProfile
	if err := c.get(ctx, "/api/auth/admin/profile", nil, token, &profile, "failed to load profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}
