package payout

import (
	"context"
	"time"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// Payout sends money from the merchant balance to a card or bank account.
type Payout interface {
	Create(ctx context.Context, request CreatePayoutRequest) (PayoutDto, error)
	Get(ctx context.Context, payoutId string) (PayoutDto, error)
}

// CreatePayoutRequest needs exactly one of CardToken, CardNumber or Iban.
type CreatePayoutRequest struct {
	OrderId       string         `json:"order_id"`
	Amount        money.Amount   `json:"amount"`
	Currency      money.Currency `json:"currency"`
	Description   string         `json:"description,omitempty"`
	CardToken     string         `json:"card_token,omitempty"`
	CardNumber    string         `json:"card_number,omitempty"`
	Iban          string         `json:"iban,omitempty"`
	RecipientName string         `json:"recipient_name,omitempty"`
	ServerUrl     string         `json:"server_url,omitempty"`
}

type PayoutDto struct {
	PayoutId     *string         `json:"payout_id"`
	OrderId      *string         `json:"order_id"`
	Status       *string         `json:"status"`
	Amount       *money.Amount   `json:"amount"`
	Fee          *money.Amount   `json:"fee"`
	Currency     *money.Currency `json:"currency"`
	MaskedCard   *string         `json:"masked_card"`
	ErrorCode    *string         `json:"error_code"`
	ErrorMessage *string         `json:"error_message"`
	CreatedAt    *time.Time      `json:"created_at"`
}
