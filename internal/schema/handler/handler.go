package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/httputil"
	"github.com/altoshop/catalog-service/internal/schema"
	"github.com/altoshop/catalog-service/internal/schema/dto"
)

type SchemaHandler struct {
	uc     schema.UseCase
	logger *zap.Logger
}

func NewSchemaHandler(uc schema.UseCase, log *zap.Logger) *SchemaHandler {
	return &SchemaHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts the admin schema-registry endpoints plus the derived
// composite schema read used to drive attribute input forms.
func (h *SchemaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schemas", h.List)
	rg.POST("/schemas", h.Create)
	rg.GET("/schemas/:id", h.Get)
	rg.PUT("/schemas/:id", h.Update)
	rg.DELETE("/schemas/:id", h.Delete)
	rg.GET("/attributes-schema", h.Composite)
}

func (h *SchemaHandler) List(c *gin.Context) {
	schemas, err := h.uc.ListSchemas(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, schemas)
}

func (h *SchemaHandler) Create(c *gin.Context) {
	var input dto.CreateSchemaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.uc.CreateSchema(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SchemaHandler) Get(c *gin.Context) {
	s, err := h.uc.GetSchema(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SchemaHandler) Update(c *gin.Context) {
	var input dto.UpdateSchemaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	s, err := h.uc.UpdateSchema(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SchemaHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteSchema(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SchemaHandler) Composite(c *gin.Context) {
	composite, err := h.uc.CompositeSchema(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, composite)
}
