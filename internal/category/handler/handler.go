package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/category"
	"github.com/altoshop/catalog-service/internal/category/dto"
	"github.com/altoshop/catalog-service/internal/httputil"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger *zap.Logger
}

func NewCategoryHandler(uc category.UseCase, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterAdminRoutes mounts the category CRUD under the admin group.
func (h *CategoryHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
	rg.POST("/categories", h.Create)
	rg.GET("/categories/:id", h.Get)
	rg.PUT("/categories/:id", h.Update)
	rg.DELETE("/categories/:id", h.Delete)
}

// RegisterStorefrontRoutes mounts the cached navigation listing.
func (h *CategoryHandler) RegisterStorefrontRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListActive)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) ListActive(c *gin.Context) {
	summaries, err := h.uc.ListActiveCategories(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var input dto.UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.uc.UpdateCategory(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
