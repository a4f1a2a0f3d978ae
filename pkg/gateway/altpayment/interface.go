package altpayment

import (
	"context"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

// AlternativePayment covers wallet and QR code payments.
type AlternativePayment interface {
	Create(ctx context.Context, request CreateAltPaymentRequest) (AltPaymentDto, error)
	Get(ctx context.Context, paymentId string) (AltPaymentDto, error)
}

type Method string

const (
	MethodApplePay  Method = "apple_pay"
	MethodGooglePay Method = "google_pay"
	MethodQr        Method = "qr"
)

// CreateAltPaymentRequest carries the wallet token for apple_pay and google_pay.
// For qr the token stays empty and the response contains the code to show to the payer.
type CreateAltPaymentRequest struct {
	Method      Method         `json:"method"`
	OrderId     string         `json:"order_id"`
	Amount      money.Amount   `json:"amount"`
	Currency    money.Currency `json:"currency"`
	Description string         `json:"description,omitempty"`
	Token       string         `json:"token,omitempty"`
	ResultUrl   string         `json:"result_url,omitempty"`
	ServerUrl   string         `json:"server_url,omitempty"`
}

type AltPaymentDto struct {
	PaymentId *string         `json:"payment_id"`
	OrderId   *string         `json:"order_id"`
	Method    *Method         `json:"method"`
	Status    *string         `json:"status"`
	Amount    *money.Amount   `json:"amount"`
	Currency  *money.Currency `json:"currency"`
	QrUrl     *string         `json:"qr_url"`
	QrCode    *string         `json:"qr_code"`
	ExpiresIn *int            `json:"expires_in"`
}
