package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"

	"github.com/eurofurence/reg-payment-gateway-client/internal/config"
	"github.com/eurofurence/reg-payment-gateway-client/internal/logging"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/money"
	"github.com/eurofurence/reg-payment-gateway-client/pkg/gateway/payparts"
)

var (
	configFile = flag.String("config", "config.yaml", "path to the yaml configuration")
	envFile    = flag.String("env", ".env", "optional file with GATEWAY_* environment overrides")
	operation  = flag.String("op", "banks", "one of banks, banks-info, limits, merchant, balance")
	amountArg  = flag.String("amount", "1000", "order amount in major currency units")
	currency   = flag.String("currency", string(money.UAH), "ISO 4217 currency code")
	period     = flag.Int("period", 0, "only list banks offering this installment period")
	bankName   = flag.String("bank", "", "bank name for limits, or bank filter for banks")
)

func main() {
	flag.Parse()
	auzerolog.SetupPlaintextLogging()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		aulogging.Logger.NoCtx().Info().Printf("interrupted, cancelling outstanding request")
		cancel()
	}()

	if err := run(ctx); err != nil {
		aulogging.Logger.NoCtx().Error().Printf("%s", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := loadConfiguration()
	if err != nil {
		return err
	}

	logging.SetGlobalSeverity(conf.Logging.Severity)

	opts := append(conf.Gateway.ClientOptions(), gateway.WithLogger(gateway.NewAutumnLogger()))
	client, err := gateway.New(conf.Gateway.ClientConfig(), opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := perform(ctx, client)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func loadConfiguration() (*config.Application, error) {
	if err := config.LoadEnvFile(*envFile); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", *envFile, err)
	}

	file, err := os.Open(*configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	conf, err := config.UnmarshalFromYamlConfiguration(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", *configFile, err)
	}
	config.ApplyEnvironment(conf, os.LookupEnv)

	if err := config.Validate(conf, aulogging.Logger.NoCtx().Error().Printf); err != nil {
		return nil, err
	}

	aulogging.Logger.NoCtx().Info().Printf("using payment gateway at %s", conf.Gateway.BaseUrl)
	return conf, nil
}

func perform(ctx context.Context, client *gateway.Client) (interface{}, error) {
	amount, err := money.AmountFromString(*amountArg)
	if err != nil {
		return nil, err
	}
	cur := money.Currency(*currency)
	if !cur.IsValid() {
		return nil, fmt.Errorf("invalid currency %q", *currency)
	}

	switch *operation {
	case "banks":
		return client.PayParts.ListBanks(ctx, amount, cur, payparts.BanksFilter{Period: *period, BankName: *bankName})
	case "banks-info":
		return client.PayParts.GetBanksInfo(ctx, amount, cur)
	case "limits":
		return client.PayParts.GetLegacyLimits(ctx, *bankName)
	case "merchant":
		return client.Merchant.Info(ctx)
	case "balance":
		return client.Merchant.Balance(ctx)
	default:
		return nil, fmt.Errorf("unknown operation %q", *operation)
	}
}
