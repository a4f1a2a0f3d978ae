package customer

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

func New(client aurestclientapi.Client, conf downstreams.Config) (Customer, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) customerUrl(customerId string) string {
	return i.conf.Url("/api/v1/customers/%s", downstreams.PathParam(customerId))
}

func (i *Impl) Create(ctx context.Context, request CreateCustomerRequest) (CustomerDto, error) {
	bodyDto := CustomerDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/customers"), request, &bodyDto); err != nil {
		return CustomerDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Get(ctx context.Context, customerId string) (CustomerDto, error) {
	bodyDto := CustomerDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, i.customerUrl(customerId), nil, &bodyDto); err != nil {
		return CustomerDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Update(ctx context.Context, customerId string, request UpdateCustomerRequest) (CustomerDto, error) {
	bodyDto := CustomerDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodPatch, i.customerUrl(customerId), request, &bodyDto); err != nil {
		return CustomerDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Delete(ctx context.Context, customerId string) error {
	return downstreams.Perform(ctx, i.client, http.MethodDelete, i.customerUrl(customerId), nil, nil)
}

func (i *Impl) ListCards(ctx context.Context, customerId string) (CustomerCardsDto, error) {
	bodyDto := CustomerCardsDto{}
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, i.customerUrl(customerId)+"/cards", nil, &bodyDto); err != nil {
		return CustomerCardsDto{}, err
	}
	return bodyDto, nil
}
