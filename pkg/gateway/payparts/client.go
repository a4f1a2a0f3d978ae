package payparts

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

type Impl struct {
	client aurestclientapi.Client
	conf   downstreams.Config
}

func New(client aurestclientapi.Client, conf downstreams.Config) (PayParts, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) ListBanks(ctx context.Context, amount money.Amount, currency money.Currency, filter BanksFilter) (BanksResponse, error) {
	request := BanksRequest{
		Amount:   amount,
		Currency: currency,
	}
	if filter.Period > 0 {
		period := filter.Period
		request.Period = &period
	}
	if filter.BankName != "" {
		bankName := filter.BankName
		request.BankName = &bankName
	}

	bodyDto := BanksResponse{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/payparts/banks"), request, &bodyDto)
	if err != nil {
		return BanksResponse{}, err
	}
	return bodyDto, nil
}

func (i *Impl) GetBanksInfo(ctx context.Context, amount money.Amount, currency money.Currency) (BanksInfo, error) {
	request := BanksRequest{
		Amount:   amount,
		Currency: currency,
	}

	var bodyDto BanksInfo
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/payparts/banks/info"), request, &bodyDto)
	if err != nil {
		return nil, err
	}
	return bodyDto, nil
}

func (i *Impl) GetLegacyLimits(ctx context.Context, bankName string) (LimitsLegacy, error) {
	query := url.Values{}
	if bankName != "" {
		query.Set("bank_name", bankName)
	}
	requestUrl := downstreams.WithQuery(i.conf.Url("/api/v1/payparts/limits"), query)

	bodyDto := LimitsLegacy{}
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return LimitsLegacy{}, err
	}
	return bodyDto, nil
}

func (i *Impl) CreateOrder(ctx context.Context, request CreateOrderRequest) (Order, error) {
	bodyDto := Order{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/payparts/orders"), request, &bodyDto)
	if err != nil {
		return Order{}, err
	}
	return bodyDto, nil
}

func (i *Impl) GetOrder(ctx context.Context, orderId string) (Order, error) {
	requestUrl := i.conf.Url("/api/v1/payparts/orders/%s", downstreams.PathParam(orderId))
	bodyDto := Order{}
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return Order{}, err
	}
	return bodyDto, nil
}
