package merchant

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

func New(client aurestclientapi.Client, conf downstreams.Config) (Merchant, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Info(ctx context.Context) (MerchantInfoDto, error) {
	bodyDto := MerchantInfoDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, i.conf.Url("/api/v1/merchant"), nil, &bodyDto); err != nil {
		return MerchantInfoDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Balance(ctx context.Context) (BalanceDto, error) {
	bodyDto := BalanceDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, i.conf.Url("/api/v1/merchant/balance"), nil, &bodyDto); err != nil {
		return BalanceDto{}, err
	}
	return bodyDto, nil
}
