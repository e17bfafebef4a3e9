package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/pkg/export"
)

type importsAPI interface {
	ImportStudents(ctx context.Context, token, fileName string, csvContent []byte) (*dto.ImportSummary, error)
}

var studentSampleHeaders = []string{"name", "email"}

// ImportService handles the mentor-driven CSV student registration flow.
// Row parsing and validation happen on the platform API; the console only
// ships the file and renders the outcome.
type ImportService struct {
	api    importsAPI
	csv    *export.CSVExporter
	logger *zap.Logger
}

// NewImportService constructs the import service.
func NewImportService(api importsAPI, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{api: api, csv: export.NewCSVExporter(), logger: logger}
}

// ImportStudents uploads the mentor's CSV and returns the import summary.
func (s *ImportService) ImportStudents(ctx context.Context, token, fileName string, csvContent []byte) (*dto.ImportSummary, error) {
	form := struct {
		FileName string `field:"file" validate:"omitempty,endswith=.csv"`
		Content  []byte `field:"file" validate:"min=1"`
	}{FileName: strings.ToLower(fileName), Content: csvContent}
	if fields := validateForm(form); len(fields) > 0 {
		return nil, fields
	}

	summary, err := s.api.ImportStudents(ctx, token, fileName, csvContent)
	if err != nil {
		return nil, err
	}
	s.logger.Info("student import complete",
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped))
	return summary, nil
}

// SampleCSV renders the downloadable student registration template.
func (s *ImportService) SampleCSV() ([]byte, error) {
	return s.csv.Render(export.Dataset{
		Headers: studentSampleHeaders,
		Rows: [][]string{
			{"Ada Lovelace", "ada@example.edu"},
			{"Alan Turing", "alan@example.edu"},
		},
	})
}
