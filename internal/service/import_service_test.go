package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-console/internal/dto"
)

type fakeImportsAPI struct {
	summary *dto.ImportSummary
	calls   int
}

func (f *fakeImportsAPI) ImportStudents(context.Context, string, string, []byte) (*dto.ImportSummary, error) {
	f.calls++
	return f.summary, nil
}

func TestImportStudentsRequiresFile(t *testing.T) {
	api := &fakeImportsAPI{}
	svc := NewImportService(api, nil)

	_, err := svc.ImportStudents(context.Background(), "token", "students.csv", nil)

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "file")
	assert.Zero(t, api.calls)
}

func TestImportStudentsRejectsNonCSV(t *testing.T) {
	api := &fakeImportsAPI{}
	svc := NewImportService(api, nil)

	_, err := svc.ImportStudents(context.Background(), "token", "students.xlsx", []byte("data"))

	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "file")
	assert.Zero(t, api.calls)
}

func TestImportStudentsReturnsSummary(t *testing.T) {
	api := &fakeImportsAPI{summary: &dto.ImportSummary{Imported: 10, Skipped: 2}}
	svc := NewImportService(api, nil)

	summary, err := svc.ImportStudents(context.Background(), "token", "students.csv", []byte("name,email\n"))

	require.NoError(t, err)
	assert.Equal(t, 10, summary.Imported)
	assert.Equal(t, 2, summary.Skipped)
}

func TestStudentSampleCSVColumns(t *testing.T) {
	svc := NewImportService(&fakeImportsAPI{}, nil)

	content, err := svc.SampleCSV()

	require.NoError(t, err)
	assert.Contains(t, string(content), "name,email")
}

func TestImportStudentsAcceptsUppercaseExtension(t *testing.T) {
	api := &fakeImportsAPI{summary: &dto.ImportSummary{Imported: 1}}
	svc := NewImportService(api, nil)

	_, err := svc.ImportStudents(context.Background(), "token", "STUDENTS.CSV", []byte("name,email\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}
