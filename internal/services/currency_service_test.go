package services

import (
	"context"
	"errors"
	"testing"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// stubRateService satisfies RateServiceInterface with a fixed table.
type stubRateService struct {
	rates map[string]float64
}

func (s *stubRateService) Refresh(ctx context.Context) {}

func (s *stubRateService) Lookup(code string) (float64, error) {
	if code == BaseCurrency {
		return 1.0, nil
	}
	if rate, ok := s.rates[code]; ok {
		return rate, nil
	}
	return 0, utils.ErrUnknownCurrency
}

func (s *stubRateService) Table() response_models.RateTableView {
	return response_models.RateTableView{Base: BaseCurrency, Source: "fallback", Rates: s.rates}
}

func newTestPresenter() CurrencyPresenterInterface {
	return NewCurrencyPresenter(&stubRateService{rates: FallbackRates})
}

func TestConvertBaseIdentity(t *testing.T) {
	presenter := newTestPresenter()

	got, err := presenter.Convert(8800, "INR")
	if err != nil || got != 8800 {
		t.Errorf("Convert(8800, INR) = %v, %v; want 8800", got, err)
	}
}

func TestConvertAppliesRate(t *testing.T) {
	presenter := newTestPresenter()

	got, err := presenter.Convert(2500, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 { // 2500 * 0.012
		t.Errorf("Convert(2500, USD) = %v, want 30", got)
	}
}

func TestPresentFormatsPerCurrency(t *testing.T) {
	presenter := newTestPresenter()

	cases := []struct {
		amount   int64
		currency string
		want     string
	}{
		{2500, "INR", "₹2,500"},
		{100000, "INR", "₹1,00,000"}, // Indian digit grouping
		{2500, "USD", "$30.00"},
		{2500, "JPY", "¥4,500"},
	}

	for _, tc := range cases {
		got, err := presenter.Present(tc.amount, tc.currency)
		if err != nil {
			t.Errorf("Present(%d, %s) error: %v", tc.amount, tc.currency, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Present(%d, %s) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestPresentUnknownCurrency(t *testing.T) {
	presenter := newTestPresenter()

	if _, err := presenter.Present(100, "BTC"); !errors.Is(err, utils.ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestFormatRejectsUnlistedCurrency(t *testing.T) {
	presenter := newTestPresenter()

	if _, err := presenter.Format(12.5, "CHF"); !errors.Is(err, utils.ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}
