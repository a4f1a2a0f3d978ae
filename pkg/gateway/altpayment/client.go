package altpayment

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

func New(client aurestclientapi.Client, conf downstreams.Config) (AlternativePayment, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Create(ctx context.Context, request CreateAltPaymentRequest) (AltPaymentDto, error) {
	bodyDto := AltPaymentDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/alternative-payments"), request, &bodyDto)
	if err != nil {
		return AltPaymentDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Get(ctx context.Context, paymentId string) (AltPaymentDto, error) {
	bodyDto := AltPaymentDto{}
	requestUrl := i.conf.Url("/api/v1/alternative-payments/%s", downstreams.PathParam(paymentId))
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return AltPaymentDto{}, err
	}
	return bodyDto, nil
}
