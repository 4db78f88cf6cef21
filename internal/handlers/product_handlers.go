package handlers

import (
	"net/http"
	"strconv"

	"github.com/capedev/shopcatalog-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// --- Inputs ---

// ProductInput is the payload for POST and PUT /api/products. Required
// numeric fields are pointers so a missing field fails binding instead of
// defaulting to zero; an update must resubmit every field.
type ProductInput struct {
	Name              string   `json:"name" binding:"required"`
	Price             *float64 `json:"price" binding:"required"`
	TotalItemsInStock *int     `json:"totalItemsInStock" binding:"required,gte=0"`
	ImageURL          *string  `json:"imageUrl" binding:"omitempty,max=1000"`
	CategoryID        *int64   `json:"categoryId" binding:"required"`
}

// GetAllProducts returns the full product list, categories embedded.
// GET /api/products
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Products.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns one product, or an empty 404 when absent.
// GET /api/products/:id
func (h *Handlers) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.Products.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if product == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct validates the payload, resolves the category and persists a
// new product. Malformed payloads and unknown category ids collapse into
// the same empty 400; nothing is written in that case.
// POST /api/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.Categories.FindByID(*input.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if category == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := models.Product{
		Name:              input.Name,
		Price:             *input.Price,
		TotalItemsInStock: *input.TotalItemsInStock,
		ImageURL:          input.ImageURL,
		Category:          *category,
	}
	if err := h.Products.Save(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct is a full replace: every field of the stored row is
// overwritten with the payload. The id is resolved before the payload is
// validated, so an unknown id gives 404 even for a bad body.
// PUT /api/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	existing, err := h.Products.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing == nil {
		c.Status(http.StatusNotFound)
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.Categories.FindByID(*input.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if category == nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := models.Product{
		ID:                id,
		Name:              input.Name,
		Price:             *input.Price,
		TotalItemsInStock: *input.TotalItemsInStock,
		ImageURL:          input.ImageURL,
		Category:          *category,
	}
	if err := h.Products.Save(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product, answering an empty 200 on success and an
// empty 404 when the id has no row (including a repeat delete).
// DELETE /api/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	exists, err := h.Products.ExistsByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !exists {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.Products.DeleteByID(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.Status(http.StatusOK)
}
