package payout

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

func New(client aurestclientapi.Client, conf downstreams.Config) (Payout, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Create(ctx context.Context, request CreatePayoutRequest) (PayoutDto, error) {
	bodyDto := PayoutDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/payouts"), request, &bodyDto)
	if err != nil {
		return PayoutDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Get(ctx context.Context, payoutId string) (PayoutDto, error) {
	bodyDto := PayoutDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodGet, i.conf.Url("/api/v1/payouts/%s", downstreams.PathParam(payoutId)), nil, &bodyDto)
	if err != nil {
		return PayoutDto{}, err
	}
	return bodyDto, nil
}
