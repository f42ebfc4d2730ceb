package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/weave-escrow/app"
	escrowd "github.com/iov-one/weave-escrow/cmd/escrowd/app"
	"github.com/iov-one/weave-escrow/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/tendermint/tendermint/libs/log"
)

type startOptions struct {
	bind    string
	debug   bool
	metrics string
}

func startCmd(home *string, newLogger func() (log.Logger, error)) *cobra.Command {
	var opts startOptions
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the abci server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			return runStart(*home, logger, opts)
		},
	}
	cmd.Flags().StringVar(&opts.bind, "bind", "tcp://localhost:26658", "address server listens on")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "call stack returned on error")
	cmd.Flags().StringVar(&opts.metrics, "metrics", env("ESCROWD_METRICS", ""),
		"address of the prometheus metrics endpoint, for example :9090. Disabled when empty.")
	return cmd
}

func runStart(home string, logger log.Logger, opts startOptions) error {
	application, err := escrowd.GenerateApp(home, logger, opts.debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", opts.bind)
	svr, err := server.NewServer(opts.bind, "socket", application)
	if err != nil {
		return errors.Wrap(err, "cannot create listener")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(err, "cannot start server")
	}
	defer svr.Stop()

	if opts.metrics != "" {
		handler, err := metricsHandler(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		go func() {
			logger.Info("Serving metrics", "addr", opts.metrics)
			if err := http.ListenAndServe(opts.metrics, handler); err != nil {
				logger.Error("Metrics server failed", "err", err)
			}
		}()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	logger.Info("Shutting down", "signal", <-sig)
	return nil
}

// metricsHandler registers the application metrics in the registry and
// returns the http handler exposing them under /metrics.
func metricsHandler(reg *prometheus.Registry) (http.Handler, error) {
	if err := app.RegisterMetrics(reg); err != nil {
		return nil, errors.Wrap(err, "cannot register metrics")
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return mux, nil
}
