package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// ListStudents fetches the filtered, paginated student listing.
func (c *Client) ListStudents(ctx context.Context, token string, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	query := url.Values{}
	setIfPresent(query, "search", filter.Search)
	setIfPresent(query, "university", filter.University)
	setIfPresent(query, "program", filter.Program)
	setIfPresent(query, "batch", filter.Batch)
	setIfPresent(query, "status", filter.Status)
	setPage(query, filter.Page, filter.PageSize)

	var envelope listEnvelope
	if err := c.get(ctx, "/api/admin/students", query, token, &envelope, "failed to load students"); err != nil {
		return nil, nil, err
	}

	var students []models.Student
	pagination, err := decodeList(envelope, &students)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load students")
	}
	return students, pagination, nil
}

// ListSessions fetches the filtered, paginated interview session listing.
func (c *Client) ListSessions(ctx context.Context, token string, filter models.SessionFilter) ([]models.InterviewSession, *models.Pagination, error) {
	query := url.Values{}
	setIfPresent(query, "search", filter.Search)
	setIfPresent(query, "job_role", filter.JobRole)
	setIfPresent(query, "company", filter.Company)
	setIfPresent(query, "interview_type", filter.InterviewType)
	setIfPresent(query, "status", filter.Status)
	setPage(query, filter.Page, filter.PageSize)

	var envelope listEnvelope
	if err := c.get(ctx, "/api/admin/sessions", query, token, &envelope, "failed to load sessions"); err != nil {
		return nil, nil, err
	}

	var sessions []models.InterviewSession
	pagination, err := decodeList(envelope, &sessions)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load sessions")
	}
	return sessions, pagination, nil
}

func decodeList(envelope listEnvelope, items interface{}) (*models.Pagination, error) {
	if len(envelope.Items) > 0 {
		if err := json.Unmarshal(envelope.Items, items); err != nil {
			return nil, err
		}
	}
	if len(envelope.Pagination) == 0 {
		return nil, nil
	}
	var pagination models.Pagination
	if err := json.Unmarshal(envelope.Pagination, &pagination); err != nil {
		return nil, err
	}
	return &pagination, nil
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func setPage(query url.Values, page, pageSize int) {
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
}
