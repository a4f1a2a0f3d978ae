package batchpayment

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

func New(client aurestclientapi.Client, conf downstreams.Config) (BatchPayment, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Create(ctx context.Context, request CreateBatchRequest) (BatchDto, error) {
	bodyDto := BatchDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/batch-payments"), request, &bodyDto)
	if err != nil {
		return BatchDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Get(ctx context.Context, batchId string) (BatchDto, error) {
	bodyDto := BatchDto{}
	requestUrl := i.conf.Url("/api/v1/batch-payments/%s", downstreams.PathParam(batchId))
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return BatchDto{}, err
	}
	return bodyDto, nil
}
