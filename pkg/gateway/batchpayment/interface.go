package batchpayment

import (
	"context"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// BatchPayment submits many card payments in one call. The gateway processes the items
// asynchronously; poll Get until the batch status is final.
type BatchPayment interface {
	Create(ctx context.Context, request CreateBatchRequest) (BatchDto, error)
	Get(ctx context.Context, batchId string) (BatchDto, error)
}

type CreateBatchRequest struct {
	BatchId   string      `json:"batch_id"`
	Items     []BatchItem `json:"items"`
	ServerUrl string      `json:"server_url,omitempty"`
}

type BatchItem struct {
	OrderId     string         `json:"order_id"`
	Amount      money.Amount   `json:"amount"`
	Currency    money.Currency `json:"currency"`
	CardToken   string         `json:"card_token"`
	Description string         `json:"description,omitempty"`
}

type BatchDto struct {
	BatchId    *string           `json:"batch_id"`
	Status     *string           `json:"status"`
	TotalCount *int              `json:"total_count"`
	Processed  *int              `json:"processed_count"`
	Items      []BatchItemResult `json:"items"`
}

type BatchItemResult struct {
	OrderId      *string       `json:"order_id"`
	PaymentId    *string       `json:"payment_id"`
	Status       *string       `json:"status"`
	Amount       *money.Amount `json:"amount"`
	ErrorCode    *string       `json:"error_code"`
	ErrorMessage *string       `json:"error_message"`
}
