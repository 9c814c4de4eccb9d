package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("loyalty-server", conf.Env, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	defer func() { _ = db.Close() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	ctx := otellib.ToContext(context.Background(), logger)
	a, err := app.New(ctx, app.Deps{
		Conf:     conf,
		DB:       db,
		Logger:   logger,
		Tracer:   tracerProvider.Tracer("loyalty"),
		Registry: reg,
	})
	if err != nil {
		panic(err)
	}

	startHTTPServer(ctx, conf, a, reg, db)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the ops server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPServer(ctx context.Context, conf config.Config, a *app.App, reg *prometheus.Registry, db *sqlx.DB) {
	logger := otellib.Extract(ctx)
	logger.Info("HTTP listening", zap.String("addr", conf.Server.HTTP.ListenString()))

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           app.NewOpsRouter(reg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancelExpiry := context.WithCancel(ctx)
	defer cancelExpiry()

	var wg sync.WaitGroup
	wg.Add(1)

	if conf.Loyalty.ExpireIntervalSeconds > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Ledger.RunExpiry(ctx, time.Duration(conf.Loyalty.ExpireIntervalSeconds)*time.Second)
			logger.Info("Stopped points expiry")
		}()
	}

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	cancelExpiry()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
