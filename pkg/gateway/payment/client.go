package payment

import (
	"context"
	"errors"
	"net/http"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
)

type Impl struct {
	client aurestclientapi.Client
	conf   downstreams.Config
}

func New(client aurestclientapi.Client, conf downstreams.Config) (Payment, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Create(ctx context.Context, request CreatePaymentRequest) (PaymentDto, error) {
	return i.perform(ctx, http.MethodPost, i.conf.Url("/api/v1/payments"), request)
}

func (i *Impl) Get(ctx context.Context, paymentId string) (PaymentDto, error) {
	return i.perform(ctx, http.MethodGet, i.conf.Url("/api/v1/payments/%s", downstreams.PathParam(paymentId)), nil)
}

func (i *Impl) Capture(ctx context.Context, paymentId string, request CapturePaymentRequest) (PaymentDto, error) {
	return i.perform(ctx, http.MethodPost, i.conf.Url("/api/v1/payments/%s/capture", downstreams.PathParam(paymentId)), request)
}

func (i *Impl) Refund(ctx context.Context, paymentId string, request RefundPaymentRequest) (PaymentDto, error) {
	return i.perform(ctx, http.MethodPost, i.conf.Url("/api/v1/payments/%s/refund", downstreams.PathParam(paymentId)), request)
}

func (i *Impl) Cancel(ctx context.Context, paymentId string) (PaymentDto, error) {
	return i.perform(ctx, http.MethodPost, i.conf.Url("/api/v1/payments/%s/cancel", downstreams.PathParam(paymentId)), nil)
}

func (i *Impl) perform(ctx context.Context, method string, requestUrl string, requestBody interface{}) (PaymentDto, error) {
	bodyDto := PaymentDto{}
	if err := downstreams.Perform(ctx, i.client, method, requestUrl, requestBody, &bodyDto); err != nil {
		return PaymentDto{}, err
	}
	return bodyDto, nil
}
