package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// runWithApp builds the object graph for one command, the command runs inside a root span
func runWithApp(name string, fn func(ctx context.Context, a *app.App) error) error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel("loyalty-cli", conf.Env, conf.Jaeger)
	defer shutdown()
	otel.SetTracerProvider(tracerProvider)

	db := conf.MySQL.MustConnect()
	defer func() { _ = db.Close() }()

	ctx, span := otellib.StartRequest(context.Background(), tracerProvider.Tracer("loyalty"), logger, name)
	defer span.End()

	a, err := app.New(ctx, app.Deps{
		Conf:     conf,
		DB:       db,
		Logger:   logger,
		Tracer:   tracerProvider.Tracer("loyalty"),
		Registry: prometheus.NewRegistry(),
	})
	if err != nil {
		return err
	}

	err = fn(ctx, a)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		otellib.Extract(ctx).Error("command failed", zap.Error(err))
	}
	return err
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseDecimal(name string, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, apperr.Validation(name, "must be a decimal number")
	}
	return d, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "loyalty",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(
		registerTransactionsCommand(),
		customEventCommand(),
		buyCampaignCommand(),
		availableCampaignsCommand(),
		simulateCashbackCommand(),
		redeemCashbackCommand(),
		couponUsageCommand(),
		balanceCommand(),
		expirePointsCommand(),
		seedCommand(),
		earningRuleCommand(),
		campaignCommand(),
		eventsCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		status, payload := apperr.ToPayload(err)
		if status >= 500 {
			payload.Error = err.Error()
		}
		data, _ := json.Marshal(payload)
		fmt.Fprintln(os.Stderr, string(data))
		os.Exit(1)
	}
}
