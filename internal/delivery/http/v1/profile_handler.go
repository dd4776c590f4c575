package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("", handler.List)
		profiles.GET("/:id", handler.Get)
		profiles.POST("", handler.Create)
	}
}

// List returns a page of profile cards.
// GET /profiles?page=1&pageSize=60
func (h *ProfileHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "60"))

	list, err := h.profileUC.ListProfiles(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /profiles/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("Perfil não encontrado"))
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Create stores a new profile card.
// POST /profiles
func (h *ProfileHandler) Create(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.profileUC.CreateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}
