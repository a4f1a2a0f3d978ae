package payment

import (
	"context"
	"time"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

type Payment interface {
	Create(ctx context.Context, request CreatePaymentRequest) (PaymentDto, error)
	Get(ctx context.Context, paymentId string) (PaymentDto, error)

	// Capture settles a previously authorized (hold) payment. A nil amount captures the full amount.
	Capture(ctx context.Context, paymentId string, request CapturePaymentRequest) (PaymentDto, error)

	// Refund returns money to the payer. A nil amount refunds everything captured.
	Refund(ctx context.Context, paymentId string, request RefundPaymentRequest) (PaymentDto, error)

	// Cancel voids an authorized payment before it is captured.
	Cancel(ctx context.Context, paymentId string) (PaymentDto, error)
}

const (
	TypeDebit = "debit"
	TypeHold  = "hold"
)

type CreatePaymentRequest struct {
	OrderId     string            `json:"order_id"`
	Amount      money.Amount      `json:"amount"`
	Currency    money.Currency    `json:"currency"`
	Description string            `json:"description"`
	Type        string            `json:"type,omitempty"`
	CustomerId  string            `json:"customer_id,omitempty"`
	CardToken   string            `json:"card_token,omitempty"`
	ResultUrl   string            `json:"result_url,omitempty"`
	ServerUrl   string            `json:"server_url,omitempty"`
	Language    string            `json:"language,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type CapturePaymentRequest struct {
	Amount *money.Amount `json:"amount,omitempty"`
}

type RefundPaymentRequest struct {
	Amount *money.Amount `json:"amount,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// PaymentDto is the gateway's view of a single payment.
type PaymentDto struct {
	PaymentId      *string           `json:"payment_id"`
	OrderId        *string           `json:"order_id"`
	Status         *string           `json:"status"`
	Type           *string           `json:"type"`
	Amount         *money.Amount     `json:"amount"`
	CapturedAmount *money.Amount     `json:"captured_amount"`
	RefundedAmount *money.Amount     `json:"refunded_amount"`
	Currency       *money.Currency   `json:"currency"`
	Description    *string           `json:"description"`
	PaymentUrl     *string           `json:"payment_url"`
	MaskedCard     *string           `json:"masked_card"`
	ErrorCode      *string           `json:"error_code"`
	ErrorMessage   *string           `json:"error_message"`
	CreatedAt      *time.Time        `json:"created_at"`
	UpdatedAt      *time.Time        `json:"updated_at"`
	Metadata       map[string]string `json:"metadata"`
}
