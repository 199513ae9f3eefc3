package service

import (
	"log"
	"sync"

	"github.com/sangkips/tillpoint-api/internal/domain/entity"
	"github.com/sangkips/tillpoint-api/internal/domain/money"
	"github.com/sangkips/tillpoint-api/internal/domain/registry"
)

// SaleService sequences the lifecycle of one sale at this terminal and
// mediates all access to the external collaborators. All calls from the
// presentation layer pass through here.
type SaleService struct {
	catalog    registry.ItemCatalog
	discounts  registry.DiscountSource
	printer    registry.ReceiptPrinter
	accounting registry.AccountingSystem

	register  *entity.CashRegister
	observers []registry.SaleObserver

	// The terminal works on one sale at a time. The mutex only shields the
	// pointer from concurrent HTTP requests; the flow itself is sequential.
	mu      sync.Mutex
	current *entity.Sale
}

// NewSaleService creates the service over its collaborators.
func NewSaleService(
	catalog registry.ItemCatalog,
	discounts registry.DiscountSource,
	printer registry.ReceiptPrinter,
	accounting registry.AccountingSystem,
) *SaleService {
	return &SaleService{
		catalog:    catalog,
		discounts:  discounts,
		printer:    printer,
		accounting: accounting,
		register:   entity.NewCashRegister(money.Zero()),
	}
}

// RegisterObserver adds an observer notified after each completed sale.
// Observers are invoked in registration order.
func (s *SaleService) RegisterObserver(observer registry.SaleObserver) {
	s.observers = append(s.observers, observer)
}

// EnteredItem is the running-total projection returned after each item
// entry. Recomputed per entry, never persisted.
type EnteredItem struct {
	Item         entity.Item
	RunningTotal money.Money
	Duplicate    bool
}

// PaymentResult is the outcome of a processed payment.
type PaymentResult struct {
	Change  money.Money
	Receipt *entity.Receipt
}

// StartNewSale begins a fresh sale, discarding any sale in progress.
func (s *SaleService) StartNewSale() *entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = entity.NewSale()
	log.Printf("sale %s started", s.current.ID())
	return s.current
}

// EnterItem resolves the item identifier against the catalog and adds it
// to the current sale. Returns ErrNoActiveSale when no sale is in
// progress and ErrItemNotFound when the identifier is unknown.
func (s *SaleService) EnterItem(itemID string, quantity int) (*EnteredItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, entity.ErrNoActiveSale
	}

	item, ok := s.catalog.FindItem(itemID)
	if !ok {
		return nil, entity.ErrItemNotFound
	}

	// Duplicate is decided before the add so the flag reflects what the
	// cashier sees on screen.
	duplicate := s.current.ContainsItem(itemID)

	s.current.AddItem(*item, quantity)

	return &EnteredItem{
		Item:         *item,
		RunningTotal: s.current.CalculateTotalWithVAT(),
		Duplicate:    duplicate,
	}, nil
}

// EndSale returns the current total including VAT. The sale is not sealed
// against further item entry.
func (s *SaleService) EndSale() (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return money.Money{}, entity.ErrNoActiveSale
	}
	return s.current.CalculateTotalWithVAT(), nil
}

// RequestDiscount asks the discount source for the combined discount for
// the given customer and applies it to the sale. Returns the new total.
func (s *SaleService) RequestDiscount(customerID string) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return money.Money{}, entity.ErrNoActiveSale
	}

	customer := entity.Customer{ID: customerID}
	discount := s.discounts.GetDiscount(s.current.Items(), s.current.CalculateTotalWithVAT(), customerID)

	return s.current.ApplyDiscount(customer, discount), nil
}

// ProcessPayment settles the current sale and triggers the post-payment
// side effects: register update, accounting, inventory decrement, receipt
// printing and observer notification. The side effects are best-effort
// and independent; a failure is logged and never aborts the sequence.
func (s *SaleService) ProcessPayment(paidAmount money.Money) (*PaymentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, entity.ErrNoActiveSale
	}

	payment := entity.NewCashPayment(paidAmount)
	change := s.current.Pay(payment)

	s.completeTransaction(payment)

	return &PaymentResult{
		Change:  change,
		Receipt: s.current.Receipt(),
	}, nil
}

// completeTransaction runs the post-payment side effects in order.
// Payment is the point of no return: nothing here can roll it back.
func (s *SaleService) completeTransaction(payment entity.CashPayment) {
	sale := s.current

	s.register.RecordPayment(payment)

	if err := s.accounting.RecordSale(sale); err != nil {
		log.Printf("sale %s: accounting record failed: %v", sale.ID(), err)
	}
	if err := s.accounting.UpdateSalesStatistics(sale.CalculateTotalWithVAT()); err != nil {
		log.Printf("sale %s: statistics update failed: %v", sale.ID(), err)
	}

	if !sale.UpdateInventory(s.catalog) {
		log.Printf("sale %s: inventory update incomplete", sale.ID())
	}

	if err := sale.PrintReceipt(s.printer); err != nil {
		log.Printf("sale %s: receipt printing failed: %v", sale.ID(), err)
	}

	for _, observer := range s.observers {
		observer.SaleCompleted(sale)
	}
}

// CurrentSale returns the sale in progress, or nil.
func (s *SaleService) CurrentSale() *entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentTotalVAT returns the current sale's total VAT.
func (s *SaleService) CurrentTotalVAT() (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return money.Money{}, entity.ErrNoActiveSale
	}
	return s.current.CalculateTotalVAT(), nil
}

// RegisterBalance returns the cash register balance.
func (s *SaleService) RegisterBalance() money.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register.Balance()
}
