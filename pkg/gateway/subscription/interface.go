package subscription

import (
	"context"
	"time"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

type Subscription interface {
	Create(ctx context.Context, request CreateSubscriptionRequest) (SubscriptionDto, error)
	Get(ctx context.Context, subscriptionId string) (SubscriptionDto, error)
	Cancel(ctx context.Context, subscriptionId string) (SubscriptionDto, error)
}

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// CreateSubscriptionRequest charges the saved card every Period until Cancel is called
// or EndDate is reached.
type CreateSubscriptionRequest struct {
	OrderId     string         `json:"order_id"`
	CustomerId  string         `json:"customer_id"`
	CardToken   string         `json:"card_token"`
	Amount      money.Amount   `json:"amount"`
	Currency    money.Currency `json:"currency"`
	Period      string         `json:"period"`
	Description string         `json:"description,omitempty"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	ServerUrl   string         `json:"server_url,omitempty"`
}

type SubscriptionDto struct {
	SubscriptionId *string         `json:"subscription_id"`
	OrderId        *string         `json:"order_id"`
	CustomerId     *string         `json:"customer_id"`
	Status         *string         `json:"status"`
	Amount         *money.Amount   `json:"amount"`
	Currency       *money.Currency `json:"currency"`
	Period         *string         `json:"period"`
	NextChargeAt   *time.Time      `json:"next_charge_at"`
	EndDate        *time.Time      `json:"end_date"`
}
