package upstream

import (
	"bytes"
	"context"
	"mime/multipart"

	"github.com/noah-isme/interview-console/internal/dto"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// ImportStudents posts a mentor-authored student CSV and returns the import
// summary. Row-level validation happens server side.
func (c *Client) ImportStudents(ctx context.Context, token, fileName string, csvContent []byte) (*dto.ImportSummary, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if fileName == "" {
		fileName = "students.csv"
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build import payload")
	}
	if _, err := part.Write(csvContent); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build import payload")
	}
	if err := writer.Close(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build import payload")
	}

	var summary dto.ImportSummary
	if err := c.postMultipart(ctx, "/api/students/import", token, writer.FormDataContentType(), body, &summary, "student import failed"); err != nil {
		return nil, err
	}
	return &summary, nil
}
