package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"yatra/pkg/utils"
)

// CurrencyPresenterInterface is the single conversion point for every
// displayed amount: base-currency integers go in, converted and formatted
// values come out. Display strings are never re-derived from other display
// strings, so rounding drift cannot compound.
type CurrencyPresenterInterface interface {
	Convert(amountInBase int64, target string) (float64, error)
	Format(amount float64, target string) (string, error)
	Present(amountInBase int64, target string) (string, error)
}

type currencyMeta struct {
	symbol         string
	tag            language.Tag
	fractionDigits int
}

// INR uses Indian digit grouping (1,00,000); whole rupees, no paise.
var displayCurrencies = map[string]currencyMeta{
	"INR": {symbol: "₹", tag: language.MustParse("en-IN"), fractionDigits: 0},
	"USD": {symbol: "$", tag: language.AmericanEnglish, fractionDigits: 2},
	"EUR": {symbol: "€", tag: language.English, fractionDigits: 2},
	"GBP": {symbol: "£", tag: language.BritishEnglish, fractionDigits: 2},
	"JPY": {symbol: "¥", tag: language.English, fractionDigits: 0},
	"AUD": {symbol: "A$", tag: language.English, fractionDigits: 2},
	"AED": {symbol: "AED ", tag: language.English, fractionDigits: 2},
}

type CurrencyPresenter struct {
	rates RateServiceInterface
}

func NewCurrencyPresenter(rates RateServiceInterface) CurrencyPresenterInterface {
	return &CurrencyPresenter{rates: rates}
}

func (p *CurrencyPresenter) Convert(amountInBase int64, target string) (float64, error) {
	if target == BaseCurrency {
		return float64(amountInBase), nil
	}
	rate, err := p.rates.Lookup(target)
	if err != nil {
		return 0, err
	}
	return float64(amountInBase) * rate, nil
}

func (p *CurrencyPresenter) Format(amount float64, target string) (string, error) {
	meta, ok := displayCurrencies[target]
	if !ok {
		return "", utils.ErrUnknownCurrency
	}

	printer := message.NewPrinter(meta.tag)
	formatted := printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(meta.fractionDigits),
		number.MaxFractionDigits(meta.fractionDigits)))
	return meta.symbol + formatted, nil
}

func (p *CurrencyPresenter) Present(amountInBase int64, target string) (string, error) {
	converted, err := p.Convert(amountInBase, target)
	if err != nil {
		return "", err
	}
	return p.Format(converted, target)
}
