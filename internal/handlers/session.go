package handlers

import (
	"github.com/mitchell1972/examCoachNG/internal/middleware"
	"github.com/mitchell1972/examCoachNG/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
	attemptService *services.AttemptService
}

func NewSessionHandler(sessionService *services.SessionService, attemptService *services.AttemptService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, attemptService: attemptService}
}

type CreateSessionRequest struct {
	SubjectCode   string  `json:"subjectCode" example:"MTH"`
	Mode          string  `json:"mode" example:"practice"`
	Topic         *string `json:"topic,omitempty"`
	QuestionCount int     `json:"questionCount,omitempty"`
	TimeLimit     int     `json:"timeLimit,omitempty"`
}

// CreateSession godoc
// @Summary      Start a practice session
// @Description  Creates a session and assigns a random sample of verified questions.
// @Description  The assigned count may be lower than requested when fewer questions exist.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session parameters"
// @Success      200 {object} Response{data=services.SessionDescriptor}
// @Failure      400 {object} Response
// @Router       /api/sessions/create [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	descriptor, err := h.sessionService.Create(services.CreateSessionParams{
		SubjectCode:   req.SubjectCode,
		Mode:          req.Mode,
		Topic:         req.Topic,
		QuestionCount: req.QuestionCount,
		TimeLimit:     req.TimeLimit,
		UserID:        middleware.UserID(c),
	})
	if err != nil {
		respondError(c, err, "Failed to create session")
		return
	}
	respondOK(c, descriptor)
}

// GetSessionQuestions godoc
// @Summary      Assigned questions for a session
// @Description  Ordered question views without the answer key
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} Response{data=[]services.SessionQuestionView}
// @Failure      500 {object} Response
// @Router       /api/sessions/questions/{sessionId} [get]
func (h *SessionHandler) GetSessionQuestions(c *gin.Context) {
	views, err := h.sessionService.Questions(c.Param("sessionId"))
	if err != nil {
		respondError(c, err, "Failed to fetch session questions")
		return
	}
	respondOK(c, views)
}

type SubmitAnswerRequest struct {
	SessionID    string `json:"sessionId"`
	QuestionID   string `json:"questionId"`
	ChosenOption string `json:"chosenOption" example:"B"`
	TimeSpentMs  int    `json:"timeSpentMs"`
	Flagged      bool   `json:"flagged"`
}

// SubmitAnswer godoc
// @Summary      Record an answer attempt
// @Description  Computes correctness against the stored key. Resubmitting the
// @Description  same question appends another attempt; all attempts count at completion.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} Response{data=services.AnswerResult}
// @Failure      400 {object} Response
// @Failure      404 {object} Response
// @Router       /api/sessions/answer [post]
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.attemptService.Submit(services.SubmitAnswerParams{
		SessionID:    req.SessionID,
		QuestionID:   req.QuestionID,
		ChosenOption: req.ChosenOption,
		TimeSpentMs:  req.TimeSpentMs,
		Flagged:      req.Flagged,
		UserID:       middleware.UserID(c),
	})
	if err != nil {
		respondError(c, err, "Failed to submit answer")
		return
	}
	respondOK(c, result)
}

// CompleteSession godoc
// @Summary      Finalize a session
// @Description  Aggregates all attempts into a score and marks the session completed
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} Response{data=services.SessionResult}
// @Failure      404 {object} Response
// @Router       /api/sessions/complete/{sessionId} [post]
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	result, err := h.sessionService.Complete(c.Param("sessionId"))
	if err != nil {
		respondError(c, err, "Failed to complete session")
		return
	}
	respondOK(c, result)
}
