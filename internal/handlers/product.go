// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/digibay/digibay-backend/internal/models"
	"github.com/digibay/digibay-backend/internal/services"
	"github.com/digibay/digibay-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	pager := utils.GetPaginationParams(c)
	caller, _ := callerFromContext(c)

	filter := services.ProductFilter{
		StatusAll: c.Query("status") == "all",
	}

	if category := c.Query("category"); category != "" {
		filter.Category = models.ProductCategory(category)
	}

	if ownerIDStr := c.Query("user"); ownerIDStr != "" {
		if ownerID, err := uuid.Parse(ownerIDStr); err == nil {
			filter.OwnerID = &ownerID
		}
	}

	page, err := h.productService.List(filter, pager, caller)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"count":    len(page.Products),
		"total":    page.Total,
		"page":     page.Page,
		"pages":    page.Pages,
		"products": page.Products,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /api/products (multipart: image, file + listing fields)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	imageHeader, imageErr := c.FormFile("image")
	fileHeader, fileErr := c.FormFile("file")
	if imageErr != nil || fileErr != nil {
		utils.BadRequestResponse(c, "Please upload image and file")
		return
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)

	req := services.CreateProductRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    models.ProductCategory(c.PostForm("category")),
	}

	imagePath, err := h.storageService.Save(imageHeader)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	filePath, err := h.storageService.Save(fileHeader)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	req.Image = imagePath
	req.File = filePath

	product, err := h.productService.Create(caller.ID, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(id, caller, &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// PUT /api/products/approve/:id
func (h *ProductHandler) ApproveProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	product, err := h.productService.Approve(id, caller)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.productService.Delete(id, caller); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted successfully",
	})
}

// GET /api/products/my/products
func (h *ProductHandler) GetMyProducts(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	products, err := h.productService.ListMine(caller.ID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GET /api/products/pending
func (h *ProductHandler) GetPendingProducts(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	products, err := h.productService.ListPending(caller)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"count":    len(products),
		"products": products,
	})
}
