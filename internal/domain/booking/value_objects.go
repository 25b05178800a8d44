package booking

import (
	"errors"
	"strings"
)

var (
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidCurrency = errors.New("currency must be a 3 letter code")
	ErrCurrencyMix     = errors.New("cannot combine amounts in different currencies")
	ErrEmptyOrderID    = errors.New("order id is required")
	ErrEmptyPaymentID  = errors.New("payment id is required")
)

// Money is an amount in the currency's minor unit (paise, satang, cents).
type Money struct {
	minor    int64
	currency string
}

func NewMoney(minor int64, currency string) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativeAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{minor: minor, currency: currency}, nil
}

func (m Money) Minor() int64     { return m.minor }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m.minor == 0 }

func (m Money) Add(other Money) (Money, error) {
	if m.currency == "" {
		return other, nil
	}
	if other.currency != "" && other.currency != m.currency {
		return Money{}, ErrCurrencyMix
	}
	return Money{minor: m.minor + other.minor, currency: m.currency}, nil
}

type OrderID string

func NewOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyOrderID
	}
	return OrderID(s), nil
}

func (o OrderID) String() string { return string(o) }

type PaymentID string

func NewPaymentID(s string) (PaymentID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyPaymentID
	}
	return PaymentID(s), nil
}

func (p PaymentID) String() string { return string(p) }
