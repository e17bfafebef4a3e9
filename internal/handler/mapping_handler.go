package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	"github.com/noah-isme/interview-console/internal/view"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

type mappingService interface {
	Create(ctx context.Context, token string, form service.MappingForm) (*models.ProgramRoleMapping, error)
}

type cascadeOptions interface {
	Universities(ctx context.Context, token string) ([]string, error)
	Programs(ctx context.Context, token, university string) ([]string, error)
	Batches(ctx context.Context, token, university, program string) ([]string, error)
}

// MappingHandler serves the program-role mapping modal: the cascade lookups
// and the mapping mutation.
type MappingHandler struct {
	service mappingService
	options cascadeOptions
}

// NewMappingHandler creates a new handler.
func NewMappingHandler(svc mappingService, options cascadeOptions) *MappingHandler {
	return &MappingHandler{service: svc, options: options}
}

// ubpCascade models the university, program, batch dropdown chain. Each
// endpoint attaches only the loader for the level it serves so ancestor
// selections do not trigger lookups whose results nobody reads.
func (h *MappingHandler) ubpCascade() *view.Cascade {
	return view.NewCascade("university", "program", "batch")
}

// Universities godoc
// @Summary University options
// @Tags Mapping
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/mapping/universities [get]
func (h *MappingHandler) Universities(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	universities, err := h.options.Universities(c.Request.Context(), claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, universities, nil)
}

// Programs godoc
// @Summary Program options
// @Description Return the programs of one university
// @Tags Mapping
// @Produce json
// @Param university query string true "University"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/mapping/programs [get]
func (h *MappingHandler) Programs(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	university := c.Query("university")
	if university == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "university is required"))
		return
	}
	cascade := h.ubpCascade()
	cascade.SetLoader("program", func(ctx context.Context, ancestors map[string]string) ([]string, error) {
		return h.options.Programs(ctx, claims.UpstreamToken, ancestors["university"])
	})
	if err := cascade.Select(c.Request.Context(), "university", university); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cascade.Options("program"), nil)
}

// Batches godoc
// @Summary Batch options
// @Description Return the batches of one university program
// @Tags Mapping
// @Produce json
// @Param university query string true "University"
// @Param program query string true "Program"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/mapping/batches [get]
func (h *MappingHandler) Batches(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	university := c.Query("university")
	program := c.Query("program")
	if university == "" || program == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "university and program are required"))
		return
	}
	cascade := h.ubpCascade()
	cascade.SetLoader("batch", func(ctx context.Context, ancestors map[string]string) ([]string, error) {
		return h.options.Batches(ctx, claims.UpstreamToken, ancestors["university"], ancestors["program"])
	})
	if err := cascade.Select(c.Request.Context(), "university", university); err != nil {
		response.Error(c, err)
		return
	}
	if err := cascade.Select(c.Request.Context(), "program", program); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cascade.Options("batch"), nil)
}

// Create godoc
// @Summary Create a program-role mapping
// @Description Map job roles to a university-program-batch cohort
// @Tags Mapping
// @Accept json
// @Produce json
// @Param payload body service.MappingForm true "Mapping payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/mapping [post]
func (h *MappingHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var form service.MappingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mapping payload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), claims.UpstreamToken, form)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, created)
}
