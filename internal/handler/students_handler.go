package handler

import (
	"github.com/gin-gonic/gin"
)

// StudentsHandler serves the registered-students tab of the admin console.
type StudentsHandler struct {
	endpoints listingEndpoints
}

// NewStudentsHandler creates a new handler.
func NewStudentsHandler(svc listingService) *StudentsHandler {
	return &StudentsHandler{endpoints: listingEndpoints{service: svc, tab: "students"}}
}

// List godoc
// @Summary Student list tab
// @Description Return the current student list view with filters and paging
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/students [get]
func (h *StudentsHandler) List(c *gin.Context) {
	h.endpoints.view(c)
}

// SetFilter godoc
// @Summary Edit a student list filter
// @Description Stage a filter edit; free-text filters apply immediately
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body filterInput true "Filter payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/students/filters [put]
func (h *StudentsHandler) SetFilter(c *gin.Context) {
	h.endpoints.setFilter(c)
}

// ApplyFilters godoc
// @Summary Apply student list filters
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students/filters/apply [post]
func (h *StudentsHandler) ApplyFilters(c *gin.Context) {
	h.endpoints.applyFilters(c)
}

// ClearFilters godoc
// @Summary Clear student list filters
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students/filters [delete]
func (h *StudentsHandler) ClearFilters(c *gin.Context) {
	h.endpoints.clearFilters(c)
}

// SetPage godoc
// @Summary Page the student list
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body pageInput true "Page payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/students/page [put]
func (h *StudentsHandler) SetPage(c *gin.Context) {
	h.endpoints.setPage(c)
}
