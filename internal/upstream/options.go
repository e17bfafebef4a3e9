package upstream

import (
	"context"
	"net/url"

	"github.com/noah-isme/interview-console/internal/models"
)

// BulkUploadOptions fetches the shared option sets backing the question
// upload and role mapping forms.
func (c *Client) BulkUploadOptions(ctx context.Context, token string) (*models.OptionSets, error) {
	var options models.OptionSets
	if err := c.get(ctx, "/api/questions/bulk-upload-options", nil, token, &options, "failed to load options"); err != nil {
		return nil, err
	}
	return &options, nil
}

// Universities fetches the top level of the UBP hierarchy.
func (c *Client) Universities(ctx context.Context, token string) ([]string, error) {
	var universities []string
	if err := c.get(ctx, "/api/lookup/universities", nil, token, &universities, "failed to load universities"); err != nil {
		return nil, err
	}
	return universities, nil
}

// Programs fetches the programs offered by a university.
func (c *Client) Programs(ctx context.Context, token, university string) ([]string, error) {
	query := url.Values{}
	query.Set("university", university)
	var programs []string
	if err := c.get(ctx, "/api/lookup/programs", query, token, &programs, "failed to load programs"); err != nil {
		return nil, err
	}
	return programs, nil
}

// Batches fetches the batches of a (university, program) pair.
func (c *Client) Batches(ctx context.Context, token, university, program string) ([]string, error) {
	query := url.Values{}
	query.Set("university", university)
	query.Set("program", program)
	var batches []string
	if err := c.get(ctx, "/api/lookup/batches", query, token, &batches, "failed to load batches"); err != nil {
		return nil, err
	}
	return batches, nil
}

// ResolveUBP resolves a university-program-batch triple to its internal id.
func (c *Client) ResolveUBP(ctx context.Context, token, university, program, batch string) (string, error) {
	query := url.Values{}
	query.Set("university", university)
	query.Set("program", program)
	query.Set("batch", batch)
	var resolved struct {
		UBPID string `json:"ubp_id"`
	}
	if err := c.get(ctx, "/api/lookup/ubp/resolve", query, token, &resolved, "failed to resolve cohort"); err != nil {
		return "", err
	}
	return resolved.UBPID, nil
}
