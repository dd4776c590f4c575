package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type AIHandler struct {
	matchUC domain.MatchUsecase
}

func NewAIHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &AIHandler{matchUC: matchUC}

	ai := r.Group("/ai")
	{
		ai.GET("/suggest", handler.Suggest)
		ai.POST("/extract", handler.Extract)
		ai.POST("/summary", handler.Summary)
	}
}

// Suggest ranks stored profiles against the query.
// GET /ai/suggest?skills=React,Node.js&area=Desenvolvimento&city=São Paulo - SP&k=6
func (h *AIHandler) Suggest(c *gin.Context) {
	// non-numeric or missing k falls back to the usecase default
	k, _ := strconv.Atoi(c.Query("k"))

	result, err := h.matchUC.Suggest(c.Request.Context(), c.Query("skills"), c.Query("area"), c.Query("city"), k)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type extractRequest struct {
	Text string `json:"text"`
}

// Extract classifies free text into skills/area tags.
// POST /ai/extract {"text": "..."} — always succeeds, empty text included.
func (h *AIHandler) Extract(c *gin.Context) {
	var req extractRequest
	_ = c.ShouldBindJSON(&req) // absent or malformed body extracts from ""

	c.JSON(http.StatusOK, h.matchUC.Extract(req.Text))
}

type summaryRequest struct {
	Profile json.RawMessage `json:"profile"`
}

// Summary asks the LLM collaborator for a headline/resumo/skillsSugeridas
// object. POST /ai/summary {"profile": {...}}
func (h *AIHandler) Summary(c *gin.Context) {
	var req summaryRequest
	_ = c.ShouldBindJSON(&req)

	summary, err := h.matchUC.Summarize(c.Request.Context(), req.Profile)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", summary)
}
