package subscription

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

func New(client aurestclientapi.Client, conf downstreams.Config) (Subscription, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Create(ctx context.Context, request CreateSubscriptionRequest) (SubscriptionDto, error) {
	bodyDto := SubscriptionDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/subscriptions"), request, &bodyDto)
	if err != nil {
		return SubscriptionDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Get(ctx context.Context, subscriptionId string) (SubscriptionDto, error) {
	bodyDto := SubscriptionDto{}
	requestUrl := i.conf.Url("/api/v1/subscriptions/%s", downstreams.PathParam(subscriptionId))
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return SubscriptionDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Cancel(ctx context.Context, subscriptionId string) (SubscriptionDto, error) {
	bodyDto := SubscriptionDto{}
	requestUrl := i.conf.Url("/api/v1/subscriptions/%s/cancel", downstreams.PathParam(subscriptionId))
	err := downstreams.Perform(ctx, i.client, http.MethodPost, requestUrl, nil, &bodyDto)
	if err != nil {
		return SubscriptionDto{}, err
	}
	return bodyDto, nil
}
