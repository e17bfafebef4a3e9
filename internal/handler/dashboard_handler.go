package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/middleware"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

type dashboardService interface {
	Student(ctx context.Context, token string) (*dto.StudentDashboardResponse, error)
	Admin(ctx context.Context, token string) (*dto.AdminDashboardResponse, error)
	Analytics(ctx context.Context, token, period string) (*dto.AnalyticsResponse, error)
}

// DashboardHandler serves the student dashboard page and the admin
// dashboard and analytics tabs.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Student godoc
// @Summary Student dashboard
// @Description Return the signed-in student's dashboard page data
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/dashboard [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	dashboard, err := h.service.Student(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Admin godoc
// @Summary Admin dashboard tab
// @Description Return the admin dashboard headline stats plus auxiliary sections
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	middleware.SetActiveTab(c, "dashboard")
	dashboard, err := h.service.Admin(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil, middleware.ExtractMeta(c))
}

// Analytics godoc
// @Summary Admin analytics tab
// @Description Return the chart series of the analytics tab
// @Tags Dashboard
// @Produce json
// @Param period query string false "Aggregation period" default(30d)
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	middleware.SetActiveTab(c, "analytics")
	period := c.DefaultQuery("period", "30d")
	analytics, err := h.service.Analytics(c.Request.Context(), claims.UpstreamToken, period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analytics, nil, middleware.ExtractMeta(c))
}
