package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
}

func NewRecommendationHandler(r *gin.RouterGroup, recommendationUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recommendationUC: recommendationUC}

	r.POST("/recommend", handler.Send)
	r.GET("/recommendations", handler.List)
}

type sendRecommendationRequest struct {
	ToID    int64  `json:"toId"`
	Message string `json:"message"`
	From    string `json:"from"`
}

// Send stores a text recommendation for a profile.
// POST /recommend {"toId": 1, "message": "...", "from": "..."}
func (h *RecommendationHandler) Send(c *gin.Context) {
	var req sendRecommendationRequest
	_ = c.ShouldBindJSON(&req) // empty body fails usecase validation below

	if req.From == "" {
		// logged-in sender, when a valid token was presented
		req.From = c.GetString(string(domain.KeyUsername))
	}

	rec := &domain.Recommendation{
		ToID:    req.ToID,
		Message: req.Message,
		From:    req.From,
	}
	if err := h.recommendationUC.SendRecommendation(c.Request.Context(), rec); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "recommendation": rec})
}

// List returns recommendations, optionally filtered by recipient.
// GET /recommendations?toId=1
func (h *RecommendationHandler) List(c *gin.Context) {
	toID, _ := strconv.ParseInt(c.Query("toId"), 10, 64)

	recs, err := h.recommendationUC.ListRecommendations(c.Request.Context(), toID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recs)
}
