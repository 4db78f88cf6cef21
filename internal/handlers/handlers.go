package handlers

import "github.com/capedev/shopcatalog-golang/internal/store"

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Products   *store.ProductStore
	Categories *store.CategoryStore
	Dashboard  *store.DashboardService
}
