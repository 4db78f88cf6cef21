package store

import (
	"database/sql"
	"errors"

	"github.com/capedev/shopcatalog-golang/internal/models"
)

// Every product load joins its category so the response always carries the
// embedded category, never a bare id.
const productSelect = "SELECT p.id, p.name, p.price, p.total_items_in_stock, p.image_url, c.id, c.name FROM products p JOIN categories c ON c.id = p.category_id"

// ProductStore wraps raw SQL access to the 'products' table.
type ProductStore struct {
	DB *sql.DB
}

// Save persists the product: an insert (assigning the generated id) when
// p.ID is zero, otherwise a full-row update.
func (s *ProductStore) Save(p *models.Product) error {
	if p.ID == 0 {
		res, err := s.DB.Exec(
			"INSERT INTO products (name, price, total_items_in_stock, image_url, category_id) VALUES (?, ?, ?, ?, ?)",
			p.Name, p.Price, p.TotalItemsInStock, p.ImageURL, p.Category.ID,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		p.ID = id
		return nil
	}

	_, err := s.DB.Exec(
		"UPDATE products SET name = ?, price = ?, total_items_in_stock = ?, image_url = ?, category_id = ? WHERE id = ?",
		p.Name, p.Price, p.TotalItemsInStock, p.ImageURL, p.Category.ID, p.ID,
	)
	return err
}

// FindAll returns every product with its category embedded, in insertion
// order. An empty table yields an empty (non-nil) slice.
func (s *ProductStore) FindAll() ([]models.Product, error) {
	rows, err := s.DB.Query(productSelect + " ORDER BY p.id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.TotalItemsInStock, &p.ImageURL, &p.Category.ID, &p.Category.Name); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// FindByID returns the product with the given id (category embedded), or
// nil when absent.
func (s *ProductStore) FindByID(id int64) (*models.Product, error) {
	var p models.Product
	err := s.DB.QueryRow(productSelect+" WHERE p.id = ?", id).
		Scan(&p.ID, &p.Name, &p.Price, &p.TotalItemsInStock, &p.ImageURL, &p.Category.ID, &p.Category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsByID reports whether a product row with the given id exists.
func (s *ProductStore) ExistsByID(id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// DeleteByID removes the product with the given id.
func (s *ProductStore) DeleteByID(id int64) error {
	_, err := s.DB.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}

// Count returns the number of products.
func (s *ProductStore) Count() (int64, error) {
	var n int64
	err := s.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&n)
	return n, err
}

// CountByCategory returns how many products reference the given category.
func (s *ProductStore) CountByCategory(categoryID int64) (int64, error) {
	var n int64
	err := s.DB.QueryRow("SELECT COUNT(*) FROM products WHERE category_id = ?", categoryID).Scan(&n)
	return n, err
}

// TotalInventoryValue sums price * stock over all products. SUM over an
// empty table yields NULL, not zero; the invalid NullFloat64 is the
// empty-table sentinel and callers substitute zero.
func (s *ProductStore) TotalInventoryValue() (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := s.DB.QueryRow("SELECT SUM(price * total_items_in_stock) FROM products").Scan(&total)
	return total, err
}

// TotalStockCount sums the stock counts over all products, with the same
// NULL-when-empty sentinel as TotalInventoryValue.
func (s *ProductStore) TotalStockCount() (sql.NullInt64, error) {
	var total sql.NullInt64
	err := s.DB.QueryRow("SELECT SUM(total_items_in_stock) FROM products").Scan(&total)
	return total, err
}
