package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// productHandler handles catalog and stock requests.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(productService portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: productService}
}

// registerProductRoutes registers product catalog and stock routes.
func registerProductRoutes(group *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := group.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.GET("/code/:code", h.getProductByCode)
		products.PUT("/:productID", h.updateProduct)
		products.POST("/:productID/stock-adjustments", h.adjustStock)
		products.GET("/:productID/stock-adjustments", h.listStockAdjustments)
	}
}

func listParams(c *gin.Context) (int, *string) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	var nextToken *string
	if raw := c.Query("nextToken"); raw != "" {
		nextToken = &raw
	}
	return limit, nextToken
}

// createProduct godoc
// @Summary Create a product
// @Description Creates a catalog product. An opening quantity or length also
// @Description writes the first stock audit record.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate product code"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListProductsResponse
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, nextToken := listParams(c)

	products, next, err := h.productService.ListProducts(c.Request.Context(), limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list products")
		return
	}

	resp := dto.ListProductsResponse{NextToken: next}
	for i := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProductByCode godoc
// @Summary Get a product by barcode/SKU code
// @Description Counter-side lookup for scanned codes.
// @Tags products
// @Produce json
// @Param code path string true "Product code"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/code/{code} [get]
func (h *productHandler) getProductByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	product, err := h.productService.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get product by code")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update catalog fields of a product
// @Description Stock is excluded; it moves only via adjustments and invoices.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("productID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// adjustStock godoc
// @Summary Apply a manual stock adjustment
// @Description Applies a signed stock movement and records it in the
// @Description append-only audit trail.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param adjustment body dto.AdjustStockRequest true "Signed delta and notes"
// @Success 201 {object} dto.StockAdjustmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Would drive stock negative"
// @Router /products/{productID}/stock-adjustments [post]
func (h *productHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	adjustment, err := h.productService.AdjustStock(c.Request.Context(), c.Param("productID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to adjust stock")
		return
	}

	logger.Info("Stock adjusted",
		slog.String("product_id", adjustment.ProductID),
		slog.String("adjustment_id", adjustment.AdjustmentID))
	c.JSON(http.StatusCreated, dto.ToStockAdjustmentResponse(adjustment))
}

// listStockAdjustments godoc
// @Summary List a product's stock audit trail
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListStockAdjustmentsResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{productID}/stock-adjustments [get]
func (h *productHandler) listStockAdjustments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, nextToken := listParams(c)

	adjustments, next, err := h.productService.ListStockAdjustments(c.Request.Context(), c.Param("productID"), limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list stock adjustments")
		return
	}

	resp := dto.ListStockAdjustmentsResponse{NextToken: next}
	for i := range adjustments {
		resp.Adjustments = append(resp.Adjustments, dto.ToStockAdjustmentResponse(&adjustments[i]))
	}
	c.JSON(http.StatusOK, resp)
}
