package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/httputil"
	"github.com/altoshop/catalog-service/internal/user"
	"github.com/altoshop/catalog-service/internal/user/dto"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users", h.Register)
	rg.GET("/users/:id", h.Get)
	rg.PUT("/users/:id/profile", h.UpdateProfile)
	rg.DELETE("/users/:id", h.Deactivate)
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.uc.Register(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.uc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.UserID = c.Param("id")

	u, err := h.uc.UpdateProfile(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.uc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
