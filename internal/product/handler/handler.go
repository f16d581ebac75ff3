package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/httputil"
	"github.com/altoshop/catalog-service/internal/product"
	"github.com/altoshop/catalog-service/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.POST("/products", h.Create)
	rg.GET("/products/:id", h.Get)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)

	rg.GET("/products/:id/variants", h.ListVariants)
	rg.POST("/products/:id/variants", h.AddVariant)
	rg.PUT("/variants/:id", h.UpdateVariant)
	rg.DELETE("/variants/:id", h.DeleteVariant)

	rg.GET("/products/:id/images", h.ListImages)
	rg.POST("/products/:id/images", h.AddImage)
	rg.PUT("/images/:id", h.UpdateImage)
	rg.DELETE("/images/:id", h.DeleteImage)

	rg.GET("/products/:id/price-range", h.PriceRange)
	rg.GET("/products/:id/stock", h.TotalStock)
}

func (h *ProductHandler) RegisterStorefrontRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.StorefrontList)
	rg.GET("/products/:slug", h.StorefrontDetail)
}

func (h *ProductHandler) List(c *gin.Context) {
	var filters dto.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, count, err := h.uc.ListProducts(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": products, "total": count})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) ListVariants(c *gin.Context) {
	variants, err := h.uc.ListVariants(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *ProductHandler) AddVariant(c *gin.Context) {
	var input dto.CreateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ProductID = c.Param("id")

	v, err := h.uc.AddVariant(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	var input dto.UpdateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	v, err := h.uc.UpdateVariant(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	if err := h.uc.DeleteVariant(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) ListImages(c *gin.Context) {
	images, err := h.uc.ListImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ProductHandler) AddImage(c *gin.Context) {
	var input dto.CreateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ProductID = c.Param("id")

	img, err := h.uc.AddImage(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *ProductHandler) UpdateImage(c *gin.Context) {
	var input dto.UpdateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	img, err := h.uc.UpdateImage(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	if err := h.uc.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) PriceRange(c *gin.Context) {
	pr, err := h.uc.PriceRange(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	if pr == nil {
		c.JSON(http.StatusOK, gin.H{"price_range": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"price_range": pr})
}

func (h *ProductHandler) TotalStock(c *gin.Context) {
	total, err := h.uc.TotalStockQuantity(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_stock_quantity": total})
}

func (h *ProductHandler) StorefrontList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))

	entries, count, err := h.uc.StorefrontList(c.Request.Context(), page, pageSize, c.Query("category"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": entries, "total": count})
}

func (h *ProductHandler) StorefrontDetail(c *gin.Context) {
	detail, err := h.uc.StorefrontDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
