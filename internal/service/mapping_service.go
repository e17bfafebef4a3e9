package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
)

type mappingAPI interface {
	CreateProgramRoleMapping(ctx context.Context, token string, mapping models.ProgramRoleMapping) (*models.ProgramRoleMapping, error)
}

type mappingOptions interface {
	ResolveUBP(ctx context.Context, token, university, program, batch string) (string, error)
	MergeRoles(ctx context.Context, token string, roles ...string)
}

// MappingForm is the program-role mapping modal payload: the cascade
// selections plus the creatable role names.
type MappingForm struct {
	University     string   `json:"university" validate:"notblank"`
	Program        string   `json:"program" validate:"notblank"`
	Batch          string   `json:"batch" validate:"notblank"`
	WorkExperience string   `json:"work_experience" validate:"notblank"`
	Roles          []string `json:"roles" validate:"min=1"`
}

// MappingService submits program-role mappings and folds freshly created
// roles back into the shared options cache.
type MappingService struct {
	api     mappingAPI
	options mappingOptions
	logger  *zap.Logger
}

// NewMappingService constructs the mapping service.
func NewMappingService(api mappingAPI, options mappingOptions, logger *zap.Logger) *MappingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MappingService{api: api, options: options, logger: logger}
}

// Create validates the form, resolves the cohort id of the selected
// university, program and batch, and posts the mapping. On success the new
// role names are merged into the cached option sets so the question forms
// offer them without a refetch.
func (s *MappingService) Create(ctx context.Context, token string, form MappingForm) (*models.ProgramRoleMapping, error) {
	form.Roles = trimmedRoles(form.Roles)
	if fields := validateForm(form); len(fields) > 0 {
		return nil, fields
	}

	mapping := models.ProgramRoleMapping{
		University:     form.University,
		Program:        form.Program,
		Batch:          form.Batch,
		WorkExperience: form.WorkExperience,
		Roles:          form.Roles,
	}
	if s.options != nil {
		ubpID, err := s.options.ResolveUBP(ctx, token, form.University, form.Program, form.Batch)
		if err != nil {
			return nil, err
		}
		mapping.UBPID = ubpID
	}

	created, err := s.api.CreateProgramRoleMapping(ctx, token, mapping)
	if err != nil {
		return nil, err
	}

	s.logger.Info("program role mapping created",
		zap.String("university", form.University),
		zap.String("program", form.Program),
		zap.String("ubp_id", mapping.UBPID),
		zap.Int("roles", len(form.Roles)))
	if s.options != nil {
		s.options.MergeRoles(ctx, token, form.Roles...)
	}
	return created, nil
}

func trimmedRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role != "" {
			out = append(out, role)
		}
	}
	return out
}
