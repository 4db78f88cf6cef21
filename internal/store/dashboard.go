package store

import "github.com/capedev/shopcatalog-golang/internal/models"

// DashboardStats is the aggregate inventory summary served by /api/dashboard.
type DashboardStats struct {
	TotalProducts     int64             `json:"totalProducts"`
	Categories        []models.Category `json:"categories"`
	TotalValue        float64           `json:"totalValue"`
	TotalItemsInStock int64             `json:"totalItemsInStock"`
}

// DashboardService recomputes the stats from both stores on every call;
// nothing is cached or incrementally maintained.
type DashboardService struct {
	Products   *ProductStore
	Categories *CategoryStore
}

// GetDashboardStats assembles the four aggregate values. Any store error
// fails the whole operation; only the documented NULL-when-empty sums are
// substituted with zero.
func (s *DashboardService) GetDashboardStats() (DashboardStats, error) {
	totalProducts, err := s.Products.Count()
	if err != nil {
		return DashboardStats{}, err
	}

	categories, err := s.Categories.FindAll()
	if err != nil {
		return DashboardStats{}, err
	}

	totalValue, err := s.Products.TotalInventoryValue()
	if err != nil {
		return DashboardStats{}, err
	}

	totalStock, err := s.Products.TotalStockCount()
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalProducts: totalProducts,
		Categories:    categories,
	}
	if totalValue.Valid {
		stats.TotalValue = totalValue.Float64
	}
	if totalStock.Valid {
		stats.TotalItemsInStock = totalStock.Int64
	}
	return stats, nil
}
