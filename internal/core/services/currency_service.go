package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/currencies"
	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
	portssvc "github.com/invoicecraft/invoice_craft_app/internal/core/ports/services"
)

// currencyService serves the static currency catalogue.
type currencyService struct {
	BaseService
}

// NewCurrencyService creates a new currency service
func NewCurrencyService() portssvc.CurrencySvc {
	return &currencyService{}
}

var _ portssvc.CurrencySvc = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return currencies.List()
}

func (s *currencyService) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := currencies.Resolve(code)
	if err != nil {
		return nil, err
	}
	return &currency, nil
}
