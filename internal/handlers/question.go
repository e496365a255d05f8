package handlers

import (
	"strconv"

	"github.com/mitchell1972/examCoachNG/internal/services"
	"github.com/mitchell1972/examCoachNG/internal/subjects"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListSubjects godoc
// @Summary      List subjects
// @Description  All exam subjects with default question counts and sections
// @Tags         questions
// @Produce      json
// @Success      200 {object} Response{data=[]subjects.Subject}
// @Router       /api/questions/subjects [get]
func (h *QuestionHandler) ListSubjects(c *gin.Context) {
	respondOK(c, subjects.All())
}

// ListQuestions godoc
// @Summary      List questions for a subject
// @Description  Filtered question list in random order, answer key included
// @Tags         questions
// @Produce      json
// @Param        subjectCode path string true "Subject code"
// @Param        section query string false "Exact section match"
// @Param        difficulty query []int false "Difficulty levels (repeatable)"
// @Param        year query int false "Exam year"
// @Param        verified query string false "Set to false to include unverified questions"
// @Param        limit query int false "Page size (default 40)"
// @Param        offset query int false "Page offset"
// @Success      200 {object} Response{data=[]models.Question}
// @Failure      500 {object} Response
// @Router       /api/questions/{subjectCode} [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	filter := services.QuestionFilter{
		Section:           c.Query("section"),
		IncludeUnverified: c.Query("verified") == "false",
	}

	for _, d := range c.QueryArray("difficulty") {
		if n, err := strconv.Atoi(d); err == nil {
			filter.Difficulties = append(filter.Difficulties, n)
		}
	}
	if y := c.Query("year"); y != "" {
		if n, err := strconv.Atoi(y); err == nil {
			filter.Year = &n
		}
	}
	if n, err := strconv.Atoi(c.DefaultQuery("limit", "40")); err == nil {
		filter.Limit = n
	}
	if n, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filter.Offset = n
	}

	questions, err := h.questionService.Filtered(c.Param("subjectCode"), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch questions")
		return
	}

	respondList(c, questions, ListMeta{
		Total:  len(questions),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetQuestion godoc
// @Summary      Get a single question
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} Response{data=models.Question}
// @Failure      404 {object} Response
// @Router       /api/questions/question/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.questionService.ByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch question")
		return
	}
	respondOK(c, question)
}

// GetQuestionStats godoc
// @Summary      Question bank statistics for a subject
// @Tags         questions
// @Produce      json
// @Param        subjectCode path string true "Subject code"
// @Success      200 {object} Response{data=services.SubjectStats}
// @Failure      500 {object} Response
// @Router       /api/questions/{subjectCode}/stats [get]
func (h *QuestionHandler) GetQuestionStats(c *gin.Context) {
	stats, err := h.questionService.Stats(c.Param("subjectCode"))
	if err != nil {
		respondError(c, err, "Failed to fetch question statistics")
		return
	}
	respondOK(c, stats)
}
