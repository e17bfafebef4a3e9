package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/interview-console/internal/dto"
	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/service"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
	"github.com/noah-isme/interview-console/pkg/response"
)

type interviewService interface {
	Instructions() []dto.InstructionStep
	Start(ctx context.Context, token string, input service.StartInterviewInput) (*dto.StartInterviewResponse, error)
	CurrentQuestion(ctx context.Context, token, sessionID string) (*dto.QuestionView, error)
	Answer(ctx context.Context, token string, input service.AnswerInput) (*dto.QuestionView, error)
	Complete(ctx context.Context, token, sessionID string) (*models.InterviewSummary, error)
}

// InterviewHandler drives the student interview flow endpoints.
type InterviewHandler struct {
	service interviewService
}

// NewInterviewHandler creates a new handler.
func NewInterviewHandler(svc interviewService) *InterviewHandler {
	return &InterviewHandler{service: svc}
}

// Instructions godoc
// @Summary Interview instructions
// @Description Return the pre-interview instruction carousel slides
// @Tags Interview
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/interview/instructions [get]
func (h *InterviewHandler) Instructions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Instructions(), nil)
}

// Start godoc
// @Summary Start an interview
// @Description Create a session and return its first question
// @Tags Interview
// @Accept json
// @Produce json
// @Param payload body service.StartInterviewInput true "Interview configuration"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/interview/start [post]
func (h *InterviewHandler) Start(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var input service.StartInterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid interview payload"))
		return
	}

	resp, err := h.service.Start(c.Request.Context(), claims.UpstreamToken, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, resp)
}

// Question godoc
// @Summary Current question
// @Description Return the question the student should answer next
// @Tags Interview
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/interview/{id}/question [get]
func (h *InterviewHandler) Question(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	question, err := h.service.CurrentQuestion(c.Request.Context(), claims.UpstreamToken, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"question": question, "finished": question == nil}, nil)
}

// Answer godoc
// @Summary Submit an answer
// @Description Submit the current answer and return the next question
// @Tags Interview
// @Accept json
// @Produce json
// @Param payload body service.AnswerInput true "Answer payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/interview/answer [post]
func (h *InterviewHandler) Answer(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var input service.AnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid answer payload"))
		return
	}

	question, err := h.service.Answer(c.Request.Context(), claims.UpstreamToken, input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"question": question, "finished": question == nil}, nil)
}

// Complete godoc
// @Summary Complete an interview
// @Description Finalise the session and return the scored summary
// @Tags Interview
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student/interview/{id}/complete [post]
func (h *InterviewHandler) Complete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	summary, err := h.service.Complete(c.Request.Context(), claims.UpstreamToken, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
