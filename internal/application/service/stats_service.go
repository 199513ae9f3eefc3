package service

import (
	"sync"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// StatsService accumulates terminal-level sales statistics. It observes
// completed sales and feeds the dashboard endpoint.
type StatsService struct {
	mu           sync.Mutex
	salesCount   int
	revenue      money.Money
	vatCollected money.Money
}

// NewStatsService creates an empty statistics accumulator.
func NewStatsService() *StatsService {
	return &StatsService{
		revenue:      money.Zero(),
		vatCollected: money.Zero(),
	}
}

// SaleCompleted records the completed sale's totals.
func (s *StatsService) SaleCompleted(sale *entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.salesCount++
	s.revenue = s.revenue.Add(sale.CalculateTotalWithVAT())
	s.vatCollected = s.vatCollected.Add(sale.CalculateTotalVAT())
}

// SalesStats is the dashboard snapshot of the accumulated statistics.
type SalesStats struct {
	SalesCount   int         `json:"sales_count"`
	Revenue      money.Money `json:"revenue"`
	VATCollected money.Money `json:"vat_collected"`
}

// Snapshot returns the current statistics.
func (s *StatsService) Snapshot() SalesStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SalesStats{
		SalesCount:   s.salesCount,
		Revenue:      s.revenue,
		VATCollected: s.vatCollected,
	}
}
