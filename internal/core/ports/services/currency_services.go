package services

import (
	"context"

	"github.com/invoicecraft/invoice_craft_app/internal/core/domain"
)

// CurrencySvc exposes the supported currency catalogue
type CurrencySvc interface {
	// ListCurrencies returns the supported currencies, popular ones first.
	ListCurrencies(ctx context.Context) []domain.Currency

	// GetCurrency resolves a single currency by its ISO 4217 code.
	GetCurrency(ctx context.Context, code string) (*domain.Currency, error)
}
