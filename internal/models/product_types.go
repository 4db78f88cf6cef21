package models

// Product is the model for the 'products' table.
// ImageURL is a pointer so a NULL column serializes as JSON null.
type Product struct {
	ID                int64   `json:"id" db:"id"`
	Name              string  `json:"name" db:"name"`
	Price             float64 `json:"price" db:"price"`
	TotalItemsInStock int     `json:"totalItemsInStock" db:"total_items_in_stock"`
	ImageURL          *string `json:"imageUrl" db:"image_url"`

	// Join (populated from the categories table on every load)
	Category Category `json:"category" db:"-"`
}
