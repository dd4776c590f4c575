package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/config"
	"github.com/skillup-ia/skillup-api/internal/delivery/http/middleware"
	"github.com/skillup-ia/skillup-api/internal/domain"
)

type RouterDeps struct {
	MatchUC          domain.MatchUsecase
	ProfileUC        domain.ProfileUsecase
	RecommendationUC domain.RecommendationUsecase
	AuthUC           domain.AuthUsecase
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Identity(deps.Config.SecretKey))
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	root := r.Group("")
	{
		NewAuthHandler(root, deps.AuthUC)
		NewProfileHandler(root, deps.ProfileUC)
		NewAIHandler(root, deps.MatchUC)
		NewRecommendationHandler(root, deps.RecommendationUC)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
	})

	return r
}
