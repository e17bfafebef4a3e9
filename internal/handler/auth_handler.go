package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/internal/session"
	"github.com/noah-isme/interview-console/internal/widget"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

// viewStateForgetter drops the server-side view state kept for one admin.
type viewStateForgetter interface {
	Forget(subject string)
}

// AuthHandler wires the login and logout endpoints of both audiences to the
// auth service and the cookie store.
type AuthHandler struct {
	service *service.AuthService
	store   *session.Store
	views   []viewStateForgetter
}

// NewAuthHandler creates a new handler. The views are forgotten when their
// admin logs out so filters and pages do not outlive the session.
func NewAuthHandler(svc *service.AuthService, store *session.Store, views ...viewStateForgetter) *AuthHandler {
	return &AuthHandler{service: svc, store: store, views: views}
}

// StudentLogin godoc
// @Summary Student login
// @Description Authenticate a student and set the durable session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/student/login [post]
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	studentSession, token, err := h.service.StudentLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.store.SaveStudent(c.Writer, c.Request, token); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session"))
		return
	}

	response.JSON(c, http.StatusOK, studentSession, nil)
}

// StudentLogout godoc
// @Summary Student logout
// @Description Clear the student session cookie
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /auth/student/logout [post]
func (h *AuthHandler) StudentLogout(c *gin.Context) {
	h.store.ClearStudent(c.Writer, c.Request)
	response.NoContent(c)
}

// AdminLogin godoc
// @Summary Admin login
// @Description Authenticate an admin and set the session-scoped cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	profile, token, err := h.service.AdminLogin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.store.SaveAdmin(c.Writer, c.Request, token); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session"))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"profile":    profile,
		"active_tab": session.DefaultAdminTab,
	}, nil)
}

// AdminLogout godoc
// @Summary Admin logout
// @Description Revoke the upstream token and clear the admin cookie
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/logout [post]
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.AdminLogout(c.Request.Context(), claims.UpstreamToken); err != nil {
		response.Error(c, err)
		return
	}
	h.store.ClearAdmin(c.Writer, c.Request)
	for _, view := range h.views {
		view.Forget(claims.Subject)
	}
	response.NoContent(c)
}

// AdminProfile godoc
// @Summary Admin profile
// @Description Return the signed-in admin's profile and active tab
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/profile [get]
func (h *AuthHandler) AdminProfile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	profile, err := h.service.AdminProfile(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"profile":    profile,
		"active_tab": h.store.ActiveTab(c.Request),
	}, nil)
}

// SetActiveTab godoc
// @Summary Switch admin tab
// @Description Persist the active admin console tab in the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body object true "Tab payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/tab [put]
func (h *AuthHandler) SetActiveTab(c *gin.Context) {
	var req struct {
		Tab string `json:"tab" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tab payload"))
		return
	}
	picker := widget.NewSingleSelect(widget.SingleSelectConfig{Options: session.AdminTabs})
	picker.Select(req.Tab)
	if picker.Selected() == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown tab"))
		return
	}
	if err := h.store.SetActiveTab(c.Writer, c.Request, picker.Selected()); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist tab"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"active_tab": picker.Selected()}, nil)
}
