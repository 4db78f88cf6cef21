package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/capedev/shopcatalog-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// fkConstraintViolation is the MySQL errno for deleting a row that other
// rows still reference.
const fkConstraintViolation = 1451

// GetAllCategories returns every category.
// GET /api/categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Categories.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory inserts a new category.
// POST /api/categories
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.Categories.Save(input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames an existing category.
// PUT /api/categories/:id
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	existing, err := h.Categories.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing == nil {
		c.Status(http.StatusNotFound)
		return
	}

	var input models.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.Categories.Update(id, input.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, models.Category{ID: id, Name: input.Name})
}

// DeleteCategory removes a category that no product references. Deleting a
// category that still has products is answered with 409 so the admin UI can
// tell the user to reassign them first.
// DELETE /api/categories/:id
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	existing, err := h.Categories.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if existing == nil {
		c.Status(http.StatusNotFound)
		return
	}

	assigned, err := h.Products.CountByCategory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if assigned > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has products assigned"})
		return
	}

	if err := h.Categories.DeleteByID(id); err != nil {
		// A product written between the count and the delete trips the
		// foreign key instead; report it the same way.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == fkConstraintViolation {
			c.JSON(http.StatusConflict, gin.H{"error": "Category still has products assigned"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.Status(http.StatusOK)
}
