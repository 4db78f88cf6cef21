package seed

import (
	"log"

	"github.com/capedev/shopcatalog-golang/internal/models"
	"github.com/capedev/shopcatalog-golang/internal/store"
)

// Fixed sample catalog: one product per category, prices in INR.
var samples = []struct {
	category string
	product  string
	price    float64
	stock    int
	imageURL string
}{
	{"Food", "Organic Apple", 299.00, 150, "https://images.unsplash.com/photo-1568702846914-96b305d2aaeb?w=400"},
	{"Electronics", "Sony Headphones", 24999.00, 75, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
	{"Fashion", "Cotton T-Shirt", 799.00, 100, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400"},
	{"Books", "The Great Gatsby", 399.00, 50, "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400"},
}

// Load populates an empty database with the sample catalog. It runs once at
// startup, before the API accepts traffic; a populated database is left
// untouched. Any error is returned for the caller to treat as fatal.
func Load(categories *store.CategoryStore, products *store.ProductStore) error {
	count, err := categories.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already contains data. Skipping initialization.")
		return nil
	}

	for _, s := range samples {
		cat, err := categories.Save(s.category)
		if err != nil {
			return err
		}

		imageURL := s.imageURL
		product := models.Product{
			Name:              s.product,
			Price:             s.price,
			TotalItemsInStock: s.stock,
			ImageURL:          &imageURL,
			Category:          cat,
		}
		if err := products.Save(&product); err != nil {
			return err
		}
	}

	log.Println("Database initialized with sample data!")
	return nil
}
