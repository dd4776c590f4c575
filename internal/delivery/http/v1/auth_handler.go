package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /register {"username": "...", "password": "..."}
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req) // empty fields are rejected by the usecase

	user, err := h.authUC.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário cadastrado com sucesso",
		"user":    user,
	})
}

// POST /login {"username": "...", "password": "..."}
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	token, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login bem-sucedido",
		"token":   token,
	})
}
