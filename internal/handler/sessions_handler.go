package handler

import (
	"github.com/gin-gonic/gin"
)

// SessionsHandler serves the interview-sessions tab of the admin console.
type SessionsHandler struct {
	endpoints listingEndpoints
}

// NewSessionsHandler creates a new handler.
func NewSessionsHandler(svc listingService) *SessionsHandler {
	return &SessionsHandler{endpoints: listingEndpoints{service: svc, tab: "sessions"}}
}

// List godoc
// @Summary Session list tab
// @Description Return the current session list view with filters and paging
// @Tags Sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/sessions [get]
func (h *SessionsHandler) List(c *gin.Context) {
	h.endpoints.view(c)
}

// SetFilter godoc
// @Summary Edit a session list filter
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body filterInput true "Filter payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/sessions/filters [put]
func (h *SessionsHandler) SetFilter(c *gin.Context) {
	h.endpoints.setFilter(c)
}

// ApplyFilters godoc
// @Summary Apply session list filters
// @Tags Sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/sessions/filters/apply [post]
func (h *SessionsHandler) ApplyFilters(c *gin.Context) {
	h.endpoints.applyFilters(c)
}

// ClearFilters godoc
// @Summary Clear session list filters
// @Tags Sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/sessions/filters [delete]
func (h *SessionsHandler) ClearFilters(c *gin.Context) {
	h.endpoints.clearFilters(c)
}

// SetPage godoc
// @Summary Page the session list
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body pageInput true "Page payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/sessions/page [put]
func (h *SessionsHandler) SetPage(c *gin.Context) {
	h.endpoints.setPage(c)
}
