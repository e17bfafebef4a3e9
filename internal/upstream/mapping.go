package upstream

import (
	"context"

	"github.com/noah-isme/interview-console/internal/models"
)

// CreateProgramRoleMapping posts a program-role mapping. The upstream response
// echoes the stored mapping including any newly created role names.
func (c *Client) CreateProgramRoleMapping(ctx context.Context, token string, mapping models.ProgramRoleMapping) (*models.ProgramRoleMapping, error) {
	var stored models.ProgramRoleMapping
	if err := c.postJSON(ctx, "/api/mappings/program-roles", token, mapping, &stored, "failed to save mapping"); err != nil {
		return nil, err
	}
	return &stored, nil
}
