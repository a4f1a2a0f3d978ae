package report

import (
	"context"
	"time"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// Report reads transaction and settlement history. Both ranges are [from, to) and sent as RFC 3339.
type Report interface {
	Transactions(ctx context.Context, from time.Time, to time.Time, filter TransactionsFilter) (TransactionsReport, error)
	Settlements(ctx context.Context, from time.Time, to time.Time) (SettlementsReport, error)
}

// TransactionsFilter fields are only sent when set.
type TransactionsFilter struct {
	Status   string
	Currency money.Currency
	Page     int
	PageSize int
}

type TransactionsReport struct {
	From         *time.Time    `json:"from"`
	To           *time.Time    `json:"to"`
	Page         *int          `json:"page"`
	TotalCount   *int          `json:"total_count"`
	Transactions []Transaction `json:"transactions"`
}

type Transaction struct {
	PaymentId   *string         `json:"payment_id"`
	OrderId     *string         `json:"order_id"`
	Type        *string         `json:"type"`
	Status      *string         `json:"status"`
	Amount      *money.Amount   `json:"amount"`
	Fee         *money.Amount   `json:"fee"`
	Currency    *money.Currency `json:"currency"`
	CreatedAt   *time.Time      `json:"created_at"`
	Description *string         `json:"description"`
}

type SettlementsReport struct {
	From        *time.Time   `json:"from"`
	To          *time.Time   `json:"to"`
	Settlements []Settlement `json:"settlements"`
}

type Settlement struct {
	SettlementId     *string         `json:"settlement_id"`
	Date             *string         `json:"date"`
	Currency         *money.Currency `json:"currency"`
	GrossAmount      *money.Amount   `json:"gross_amount"`
	FeeAmount        *money.Amount   `json:"fee_amount"`
	NetAmount        *money.Amount   `json:"net_amount"`
	TransactionCount *int            `json:"transaction_count"`
}
