package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/models"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

// BulkQuestionUpload is the multipart payload of the bulk question endpoint:
// a CSV file part plus JSON-encoded category arrays.
type BulkQuestionUpload struct {
	Industries      []string
	Companies       []string
	Roles           []string
	WorkExperiences []string
	CSVFileName     string
	CSVContent      []byte
}

// UploadQuestions posts the bulk upload payload and returns the inserted and
// skipped row summary.
func (c *Client) UploadQuestions(ctx context.Context, token string, upload BulkQuestionUpload) (*dto.BulkUploadSummary, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	categories := map[string][]string{
		"industries":       upload.Industries,
		"companies":        upload.Companies,
		"roles":            upload.Roles,
		"work_experiences": upload.WorkExperiences,
	}
	for field, values := range categories {
		encoded, err := json.Marshal(values)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode categories")
		}
		if err := writer.WriteField(field, string(encoded)); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upload payload")
		}
	}

	fileName := upload.CSVFileName
	if fileName == "" {
		fileName = "questions.csv"
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upload payload")
	}
	if _, err := part.Write(upload.CSVContent); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upload payload")
	}
	if err := writer.Close(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upload payload")
	}

	var summary dto.BulkUploadSummary
	if err := c.postMultipart(ctx, "/api/questions/bulk-upload", token, writer.FormDataContentType(), body, &summary, "question upload failed"); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CreateQuestion posts a single question authored in the admin form.
func (c *Client) CreateQuestion(ctx context.Context, token string, question models.Question) (*models.Question, error) {
	var created models.Question
	if err := c.postJSON(ctx, "/api/questions", token, question, &created, "failed to create question"); err != nil {
		return nil, err
	}
	return &created, nil
}
