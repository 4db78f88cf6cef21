package store

import (
	"database/sql"
	"errors"

	"github.com/capedev/shopcatalog-golang/internal/models"
)

// CategoryStore wraps raw SQL access to the 'categories' table.
type CategoryStore struct {
	DB *sql.DB
}

// Save inserts a new category and returns it with its generated id.
func (s *CategoryStore) Save(name string) (models.Category, error) {
	res, err := s.DB.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		return models.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	return models.Category{ID: id, Name: name}, nil
}

// Update renames an existing category.
func (s *CategoryStore) Update(id int64, name string) error {
	_, err := s.DB.Exec("UPDATE categories SET name = ? WHERE id = ?", name, id)
	return err
}

// FindAll returns every category in insertion order. An empty table yields
// an empty (non-nil) slice.
func (s *CategoryStore) FindAll() ([]models.Category, error) {
	rows, err := s.DB.Query("SELECT id, name FROM categories ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// FindByID returns the category with the given id, or nil when absent.
func (s *CategoryStore) FindByID(id int64) (*models.Category, error) {
	var cat models.Category
	err := s.DB.QueryRow("SELECT id, name FROM categories WHERE id = ?", id).Scan(&cat.ID, &cat.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Count returns the number of categories.
func (s *CategoryStore) Count() (int64, error) {
	var n int64
	err := s.DB.QueryRow("SELECT COUNT(*) FROM categories").Scan(&n)
	return n, err
}

// DeleteByID removes the category with the given id.
func (s *CategoryStore) DeleteByID(id int64) error {
	_, err := s.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	return err
}
