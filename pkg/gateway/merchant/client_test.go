package merchant

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/downstreams"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/gatewaytest"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
)

var testConfig = downstreams.Config{
	BaseUrl:  "https://api.example.test",
	Login:    "L",
	Password: "P",
}

func setup(t *testing.T, status int, body string) (Merchant, *gatewaytest.Transport) {
	transport := gatewaytest.NewTransport(status, body)
	client, err := downstreams.ClientWith(testConfig, downstreams.ClientOptions{HttpClient: transport.Client()})
	require.NoError(t, err)
	cut, err := New(client, testConfig)
	require.NoError(t, err)
	return cut, transport
}

func TestInfo(t *testing.T) {
	cut, transport := setup(t, http.StatusOK, `{"merchant_id":"m-1","name":"Shop","currencies":["UAH","EUR"],"payparts_banks":["BankA"]}`)

	info, err := cut.Info(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Shop", *info.Name)
	require.Equal(t, []money.Currency{money.UAH, money.EUR}, info.Currencies)
	require.Equal(t, []string{"BankA"}, info.PayPartsBanks)
	require.Nil(t, info.PaymentTypes)
	require.Nil(t, info.Website)

	require.Equal(t, http.MethodGet, transport.LastRequest().Method)
	require.Equal(t, "/api/v1/merchant", transport.LastRequest().URL.Path)
	require.Empty(t, transport.LastBody())
}

func TestBalance(t *testing.T) {
	cut, transport := setup(t, http.StatusOK, `{"balances":[
		{"currency":"UAH","available":"15000.25","pending":300},
		{"currency":"EUR","available":0}
	]}`)

	balance, err := cut.Balance(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api/v1/merchant/balance", transport.LastRequest().URL.Path)

	require.Len(t, balance.Balances, 2)
	require.Equal(t, money.UAH, *balance.Balances[0].Currency)
	require.Equal(t, "15000.25", balance.Balances[0].Available.String())
	require.Equal(t, "300", balance.Balances[0].Pending.String())
	require.Nil(t, balance.Balances[0].Reserved)
	require.True(t, balance.Balances[1].Available.IsZero())
}

func TestBalanceMalformed(t *testing.T) {
	cut, _ := setup(t, http.StatusOK, `{"balances":[{"available":"lots"}]}`)

	balance, err := cut.Balance(context.Background())
	require.Error(t, err)
	require.IsType(t, &downstreams.ParseError{}, err)
	require.Equal(t, BalanceDto{}, balance)
}
