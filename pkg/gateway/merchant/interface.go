package merchant

import (
	"context"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// Merchant reads data about the account the credentials belong to.
type Merchant interface {
	Info(ctx context.Context) (MerchantInfoDto, error)
	Balance(ctx context.Context) (BalanceDto, error)
}

type MerchantInfoDto struct {
	MerchantId    *string          `json:"merchant_id"`
	Name          *string          `json:"name"`
	Status        *string          `json:"status"`
	Email         *string          `json:"email"`
	Website       *string          `json:"website"`
	Currencies    []money.Currency `json:"currencies"`
	PaymentTypes  []string         `json:"payment_types"`
	PayPartsBanks []string         `json:"payparts_banks"`
}

type BalanceDto struct {
	Balances []CurrencyBalance `json:"balances"`
}

type CurrencyBalance struct {
	Currency  *money.Currency `json:"currency"`
	Available *money.Amount   `json:"available"`
	Pending   *money.Amount   `json:"pending"`
	Reserved  *money.Amount   `json:"reserved"`
}
