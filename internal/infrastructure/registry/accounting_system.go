package registry

import (
	"log"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
)

// LogAccountingSystem is the stand-in for the external accounting system.
// It writes sale records to the process log; a production deployment swaps
// in a client for the real ledger behind the same interface.
type LogAccountingSystem struct{}

// NewLogAccountingSystem creates the logging accounting system.
func NewLogAccountingSystem() *LogAccountingSystem {
	return &LogAccountingSystem{}
}

// RecordSale records the completed sale's totals.
func (a *LogAccountingSystem) RecordSale(sale *entity.Sale) error {
	log.Printf("accounting: sale %s recorded, total=%s vat=%s",
		sale.ID(), sale.CalculateTotal(), sale.CalculateTotalVAT())
	return nil
}

// UpdateSalesStatistics adds the amount to the daily sales statistics.
func (a *LogAccountingSystem) UpdateSalesStatistics(amount money.Money) error {
	log.Printf("accounting: sales statistics updated, amount=%s", amount)
	return nil
}
