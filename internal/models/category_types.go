package models

// Category defines the struct for the 'categories' table
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateCategoryInput is the payload for POST and PUT /api/categories.
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}
