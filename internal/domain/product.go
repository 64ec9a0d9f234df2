package domain

import "time"

// Product — товар каталога со складским остатком.
type Product struct {
	ID          string
	Name        string
	Description string
	// PriceMinor — цена в минимальных денежных единицах.
	PriceMinor int64
	// StockQty — текущий остаток на складе.
	StockQty  int32
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты товара.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.PriceMinor < 0 {
		errs = append(errs, ErrItemPriceInvalid)
	}
	if p.StockQty < 0 {
		errs = append(errs, ErrStockNegative)
	}

	return errs
}
