package report

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
)

type Impl struct {
	client aurestclientapi.Client
	conf   downstreams.Config
}

func New(client aurestclientapi.Client, conf downstreams.Config) (Report, error) {
	if client == nil {
		return nil, errors.New("no downstream client provided")
	}

	return &Impl{
		client: client,
		conf:   conf,
	}, nil
}

func rangeQuery(from time.Time, to time.Time) url.Values {
	query := url.Values{}
	query.Set("from", from.UTC().Format(time.RFC3339))
	query.Set("to", to.UTC().Format(time.RFC3339))
	return query
}

func (i *Impl) Transactions(ctx context.Context, from time.Time, to time.Time, filter TransactionsFilter) (TransactionsReport, error) {
	query := rangeQuery(from, to)
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Currency != "" {
		query.Set("currency", filter.Currency.String())
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}

	bodyDto := TransactionsReport{}
	requestUrl := downstreams.WithQuery(i.conf.Url("/api/v1/reports/transactions"), query)
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto); err != nil {
		return TransactionsReport{}, err
	}
	return bodyDto, nil
}

func (i *Impl) Settlements(ctx context.Context, from time.Time, to time.Time) (SettlementsReport, error) {
	bodyDto := SettlementsReport{}
	requestUrl := downstreams.WithQuery(i.conf.Url("/api/v1/reports/settlements"), rangeQuery(from, to))
	if err := downstreams.Perform(ctx, i.client, http.MethodGet, requestUrl, nil, &bodyDto); err != nil {
		return SettlementsReport{}, err
	}
	return bodyDto, nil
}
