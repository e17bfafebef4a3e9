package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

type leaderboardService interface {
	listingService
	FilterOptions(ctx context.Context, token string) (*models.LeaderboardOptions, error)
	Export(ctx context.Context, subject, token, format string) ([]byte, string, error)
}

// LeaderboardHandler serves the leaderboard tab and its exports.
type LeaderboardHandler struct {
	service   leaderboardService
	endpoints listingEndpoints
}

// NewLeaderboardHandler creates a new handler.
func NewLeaderboardHandler(svc leaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		service:   svc,
		endpoints: listingEndpoints{service: svc, tab: "leaderboard"},
	}
}

// View godoc
// @Summary Leaderboard tab
// @Description Return the current leaderboard view with filters and paging
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/leaderboard [get]
func (h *LeaderboardHandler) View(c *gin.Context) {
	h.endpoints.view(c)
}

// SetFilter godoc
// @Summary Edit a leaderboard filter
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param payload body filterInput true "Filter payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/leaderboard/filters [put]
func (h *LeaderboardHandler) SetFilter(c *gin.Context) {
	h.endpoints.setFilter(c)
}

// ApplyFilters godoc
// @Summary Apply leaderboard filters
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/leaderboard/filters/apply [post]
func (h *LeaderboardHandler) ApplyFilters(c *gin.Context) {
	h.endpoints.applyFilters(c)
}

// ClearFilters godoc
// @Summary Clear leaderboard filters
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/leaderboard/filters [delete]
func (h *LeaderboardHandler) ClearFilters(c *gin.Context) {
	h.endpoints.clearFilters(c)
}

// SetPage godoc
// @Summary Page the leaderboard
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param payload body pageInput true "Page payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/leaderboard/page [put]
func (h *LeaderboardHandler) SetPage(c *gin.Context) {
	h.endpoints.setPage(c)
}

// FilterOptions godoc
// @Summary Leaderboard filter options
// @Description Return the dropdown values the leaderboard filters offer
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/leaderboard/options [get]
func (h *LeaderboardHandler) FilterOptions(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	options, err := h.service.FilterOptions(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, options, nil)
}

// Export godoc
// @Summary Export the leaderboard
// @Description Download the filtered leaderboard as CSV or PDF
// @Tags Leaderboard
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/leaderboard/export [get]
func (h *LeaderboardHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	format := c.DefaultQuery("format", "csv")
	content, contentType, err := h.service.Export(c.Request.Context(), claims.Subject, claims.UpstreamToken, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("leaderboard-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, content)
}
