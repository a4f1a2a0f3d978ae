package payparts

import (
	"context"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// PayParts covers the installment plan endpoints.
type PayParts interface {
	// ListBanks asks which banks offer installments for an order of the given amount.
	//
	// The response is returned as sent by the gateway. Banks are not filtered by their limits.
	ListBanks(ctx context.Context, amount money.Amount, currency money.Currency, filter BanksFilter) (BanksResponse, error)

	// GetBanksInfo is the older variant of ListBanks that answers with a bare list.
	GetBanksInfo(ctx context.Context, amount money.Amount, currency money.Currency) (BanksInfo, error)

	// GetLegacyLimits returns a bank's limits in the legacy minor unit representation.
	GetLegacyLimits(ctx context.Context, bankName string) (LimitsLegacy, error)

	CreateOrder(ctx context.Context, request CreateOrderRequest) (Order, error)
	GetOrder(ctx context.Context, orderId string) (Order, error)
}

// BanksFilter narrows the bank list on the gateway side. Zero values are not sent.
type BanksFilter struct {
	Period   int
	BankName string
}

type BanksRequest struct {
	Amount   money.Amount   `json:"amount"`
	Currency money.Currency `json:"currency"`
	Period   *int           `json:"period,omitempty"`
	BankName *string        `json:"bank_name,omitempty"`
}

// BanksResponse is the envelope returned by ListBanks.
//
// Banks is nil when the gateway sent no list at all (absent or null), which is different
// from an empty list.
type BanksResponse struct {
	Banks   []BankInfo `json:"banks"`
	Status  *string    `json:"status"`
	Message *string    `json:"message"`
	Count   *int       `json:"count"`
}

// BanksInfo is the bare list returned by GetBanksInfo.
type BanksInfo []BankInfo

// BankInfo describes one bank's installment offering.
//
// AvailablePeriods and Periods are independent facts. A bank may list available periods
// without fee details, and the two lists need not line up by position.
type BankInfo struct {
	Name             *string      `json:"name"`
	AvailablePeriods []int        `json:"available_periods"`
	Limits           *BankLimits  `json:"limits"`
	Periods          []PeriodInfo `json:"periods"`
}

// BankLimits are order amount limits in major currency units.
//
// A missing MinAmount means the global minimum order amount applies (see CreateOrder).
// A missing MaxAmount means there is no upper bound.
type BankLimits struct {
	MinAmount *money.Amount `json:"min_amount"`
	MaxAmount *money.Amount `json:"max_amount"`
}

// PeriodInfo is the fee charged for one installment period, in months.
type PeriodInfo struct {
	Period *int          `json:"period"`
	Fee    *money.Amount `json:"fee"`
}

// LimitsLegacy is the old limits shape. Amounts are integer minor units (hundredths), so it
// must not be mixed up with BankLimits.
type LimitsLegacy struct {
	MinAmount  *money.MinorAmount `json:"min_amount"`
	MaxAmount  *money.MinorAmount `json:"max_amount"`
	MinPeriods *int               `json:"min_periods"`
	MaxPeriods *int               `json:"max_periods"`
}

type Product struct {
	Name  string       `json:"name"`
	Count int          `json:"count"`
	Price money.Amount `json:"price"`
}

// CreateOrderRequest opens an installment order. Amount must not be below the bank's
// MinAmount, or the global minimum order amount when the bank has none.
type CreateOrderRequest struct {
	OrderId     string         `json:"order_id"`
	Amount      money.Amount   `json:"amount"`
	Currency    money.Currency `json:"currency"`
	PartsCount  int            `json:"parts_count"`
	BankName    string         `json:"bank_name,omitempty"`
	Products    []Product      `json:"products,omitempty"`
	ResponseUrl string         `json:"response_url,omitempty"`
	RedirectUrl string         `json:"redirect_url,omitempty"`
}

type Order struct {
	OrderId    *string       `json:"order_id"`
	State      *string       `json:"state"`
	Token      *string       `json:"token"`
	Amount     *money.Amount `json:"amount"`
	PartsCount *int          `json:"parts_count"`
	BankName   *string       `json:"bank_name"`
	Message    *string       `json:"message"`
}
