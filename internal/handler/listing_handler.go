package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/middleware"
	"github.com/noah-isme/interview-console/internal/view"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

// listingService is the view-state surface every admin list tab exposes.
type listingService interface {
	SetFilter(ctx context.Context, subject, token, name, value string) error
	Apply(ctx context.Context, subject, token string) error
	Clear(ctx context.Context, subject, token string) error
	SetPage(ctx context.Context, subject, token string, page int) error
	View(ctx context.Context, subject, token string) (view.Snapshot, error)
}

// listingEndpoints binds the shared filter, paging and view endpoints of
// one admin list tab.
type listingEndpoints struct {
	service listingService
	tab     string
}

type filterInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type pageInput struct {
	Page int `json:"page" binding:"required,min=1"`
}

func (e listingEndpoints) view(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	middleware.SetActiveTab(c, e.tab)
	snapshot, err := e.service.View(c.Request.Context(), claims.Subject, claims.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot, snapshot.Pagination, middleware.ExtractMeta(c))
}

func (e listingEndpoints) setFilter(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var input filterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter payload"))
		return
	}
	if err := e.service.SetFilter(c.Request.Context(), claims.Subject, claims.UpstreamToken, input.Name, input.Value); err != nil {
		response.Error(c, err)
		return
	}
	e.view(c)
}

func (e listingEndpoints) applyFilters(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := e.service.Apply(c.Request.Context(), claims.Subject, claims.UpstreamToken); err != nil {
		response.Error(c, err)
		return
	}
	e.view(c)
}

func (e listingEndpoints) clearFilters(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := e.service.Clear(c.Request.Context(), claims.Subject, claims.UpstreamToken); err != nil {
		response.Error(c, err)
		return
	}
	e.view(c)
}

func (e listingEndpoints) setPage(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var input pageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid page payload"))
		return
	}
	if err := e.service.SetPage(c.Request.Context(), claims.Subject, claims.UpstreamToken, input.Page); err != nil {
		response.Error(c, err)
		return
	}
	e.view(c)
}
