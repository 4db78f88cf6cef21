package handlers_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appleRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "total_items_in_stock", "image_url", "category_id", "category_name"}).
		AddRow(1, "Organic Apple", 299.0, 150, "https://example.com/apple.jpg", 1, "Food")
}

func TestGetAllProducts(t *testing.T) {
	router, mock := newTestAPI(t)

	t.Run("returns the full list with embedded categories", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " ORDER BY p.id ASC")).
			WillReturnRows(appleRow().
				AddRow(2, "Sony Headphones", 24999.0, 75, nil, 2, "Electronics"))

		w := doRequest(t, router, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"id":1,"name":"Organic Apple","price":299,"totalItemsInStock":150,"imageUrl":"https://example.com/apple.jpg","category":{"id":1,"name":"Food"}},
			{"id":2,"name":"Sony Headphones","price":24999,"totalItemsInStock":75,"imageUrl":null,"category":{"id":2,"name":"Electronics"}}
		]`, w.Body.String())
	})

	t.Run("empty catalog is an empty array, not null", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " ORDER BY p.id ASC")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "total_items_in_stock", "image_url", "category_id", "category_name"}))

		w := doRequest(t, router, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByID(t *testing.T) {
	router, mock := newTestAPI(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(appleRow())

		w := doRequest(t, router, http.MethodGet, "/api/products/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Organic Apple","price":299,"totalItemsInStock":150,"imageUrl":"https://example.com/apple.jpg","category":{"id":1,"name":"Food"}}`, w.Body.String())
	})

	t.Run("absent id gives an empty 404", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "total_items_in_stock", "image_url", "category_id", "category_name"}))

		w := doRequest(t, router, http.MethodGet, "/api/products/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("non-numeric id gives 400", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/products/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct(t *testing.T) {
	router, mock := newTestAPI(t)

	t.Run("valid payload persists and echoes the record", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Food"))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products (name, price, total_items_in_stock, image_url, category_id) VALUES (?, ?, ?, ?, ?)")).
			WithArgs("Organic Apple", 299.0, 150, "https://example.com/apple.jpg", int64(1)).
			WillReturnResult(sqlmock.NewResult(7, 1))

		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","price":299,"totalItemsInStock":150,"imageUrl":"https://example.com/apple.jpg","categoryId":1}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":7,"name":"Organic Apple","price":299,"totalItemsInStock":150,"imageUrl":"https://example.com/apple.jpg","category":{"id":1,"name":"Food"}}`, w.Body.String())
	})

	t.Run("optional imageUrl may be omitted", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Food"))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products (name, price, total_items_in_stock, image_url, category_id) VALUES (?, ?, ?, ?, ?)")).
			WithArgs("Organic Apple", 299.0, 150, nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(8, 1))

		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","price":299,"totalItemsInStock":150,"categoryId":1}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":8,"name":"Organic Apple","price":299,"totalItemsInStock":150,"imageUrl":null,"category":{"id":1,"name":"Food"}}`, w.Body.String())
	})

	t.Run("unknown category gives empty 400, nothing written", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = ?")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","price":299,"totalItemsInStock":150,"categoryId":99}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("missing required field gives 400 without touching the store", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","totalItemsInStock":150,"categoryId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("wrong field type gives 400", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","price":"cheap","totalItemsInStock":150,"categoryId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative stock gives 400", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/products",
			`{"name":"Organic Apple","price":299,"totalItemsInStock":-5,"categoryId":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProduct(t *testing.T) {
	router, mock := newTestAPI(t)

	t.Run("absent id gives 404 before the payload is validated", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "total_items_in_stock", "image_url", "category_id", "category_name"}))

		w := doRequest(t, router, http.MethodPut, "/api/products/42", `{"bogus":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("full replace overwrites every field", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(appleRow())
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = ?")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Electronics"))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET name = ?, price = ?, total_items_in_stock = ?, image_url = ?, category_id = ? WHERE id = ?")).
			WithArgs("Smart Scale", 1499.0, 20, nil, int64(2), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doRequest(t, router, http.MethodPut, "/api/products/1",
			`{"name":"Smart Scale","price":1499,"totalItemsInStock":20,"categoryId":2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		// imageUrl was not resubmitted, so the replace clears it.
		assert.JSONEq(t, `{"id":1,"name":"Smart Scale","price":1499,"totalItemsInStock":20,"imageUrl":null,"category":{"id":2,"name":"Electronics"}}`, w.Body.String())
	})

	t.Run("payload missing a required field gives 400, nothing written", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(appleRow())

		w := doRequest(t, router, http.MethodPut, "/api/products/1",
			`{"price":1499}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown category gives 400, nothing written", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(productSelect + " WHERE p.id = ?")).
			WithArgs(int64(1)).
			WillReturnRows(appleRow())
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories WHERE id = ?")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		w := doRequest(t, router, http.MethodPut, "/api/products/1",
			`{"name":"Smart Scale","price":1499,"totalItemsInStock":20,"categoryId":99}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct(t *testing.T) {
	router, mock := newTestAPI(t)

	t.Run("existing id deletes with an empty 200", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := doRequest(t, router, http.MethodDelete, "/api/products/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("deleting the same id again gives 404", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		w := doRequest(t, router, http.MethodDelete, "/api/products/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
