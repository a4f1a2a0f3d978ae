package finmon

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

func New(client aurestclientapi.Client, conf downstreams.Config) (FinMon, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func (i *Impl) Check(ctx context.Context, request CheckRequest) (CheckResultDto, error) {
	bodyDto := CheckResultDto{}
	err := downstreams.Perform(ctx, i.client, http.MethodPost, i.conf.Url("/api/v1/finmon/checks"), request, &bodyDto)
	if err != nil {
		return CheckResultDto{}, err
	}
	return bodyDto, nil
}

func (i *Impl) GetCheck(ctx context.Context, checkId string) (CheckResultDto, error) {
	bodyDto := CheckResultDto{}
	requestUrl := i.conf.Url("/api/v1/finmon/checks/%s", downstreams.PathParam(checkId))
	err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto)
	if err != nil {
		return CheckResultDto{}, err
	}
	return bodyDto, nil
}
