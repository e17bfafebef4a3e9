package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
)

type fakeMappingSrv struct {
	created  *models.ProgramRoleMapping
	err      error
	lastForm service.MappingForm
}

func (f *fakeMappingSrv) Create(_ context.Context, _ string, form service.MappingForm) (*models.ProgramRoleMapping, error) {
	f.lastForm = form
	return f.created, f.err
}

type fakeCascade struct {
	universities []string
	programs     map[string][]string
	batches      map[string][]string
}

func (f *fakeCascade) Universities(context.Context, string) ([]string, error) {
	return f.universities, nil
}

func (f *fakeCascade) Programs(_ context.Context, _ string, university string) ([]string, error) {
	return f.programs[university], nil
}

func (f *fakeCascade) Batches(_ context.Context, _ string, university, program string) ([]string, error) {
	return f.batches[university+"/"+program], nil
}

func TestMappingCreateSubmitsForm(t *testing.T) {
	srv := &fakeMappingSrv{created: &models.ProgramRoleMapping{University: "Alpha University"}}
	handler := NewMappingHandler(srv, &fakeCascade{})

	body, _ := json.Marshal(service.MappingForm{
		University:     "Alpha University",
		Program:        "Computer Science",
		Batch:          "2026",
		WorkExperience: "Fresher",
		Roles:          []string{"Backend Engineer"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/mapping", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c := adminContext(t, rec, req)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Backend Engineer"}, srv.lastForm.Roles)
}

func TestMappingCreateFieldErrors(t *testing.T) {
	srv := &fakeMappingSrv{err: service.FieldErrors{"roles": "add at least one role"}}
	handler := NewMappingHandler(srv, &fakeCascade{})

	body, _ := json.Marshal(service.MappingForm{University: "Alpha University"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/mapping", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c := adminContext(t, rec, req)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	fields, ok := envelope.Meta["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "add at least one role", fields["roles"])
}

func TestProgramsLookupRequiresUniversity(t *testing.T) {
	handler := NewMappingHandler(&fakeMappingSrv{}, &fakeCascade{})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet, "/admin/mapping/programs", nil))

	handler.Programs(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchesLookupKeyedByAncestors(t *testing.T) {
	handler := NewMappingHandler(&fakeMappingSrv{}, &fakeCascade{
		batches: map[string][]string{"Alpha University/Computer Science": {"2025", "2026"}},
	})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet,
		"/admin/mapping/batches?university=Alpha+University&program=Computer+Science", nil))

	handler.Batches(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2026")
}

func TestProgramsLookupKeyedByUniversity(t *testing.T) {
	handler := NewMappingHandler(&fakeMappingSrv{}, &fakeCascade{
		programs: map[string][]string{"Alpha University": {"Computer Science", "Economics"}},
	})

	rec := httptest.NewRecorder()
	c := adminContext(t, rec, httptest.NewRequest(http.MethodGet,
		"/admin/mapping/programs?university=Alpha+University", nil))

	handler.Programs(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Economics")
}
