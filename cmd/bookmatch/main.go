package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	app "github.com/openclob/bookmatch/internal/app/engine"
	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	tradesinkv1 "github.com/openclob/bookmatch/internal/domain/trade-sink/v1"
	ordersource "github.com/openclob/bookmatch/internal/usecase/order-source"
	tradesink "github.com/openclob/bookmatch/internal/usecase/trade-sink"
	"github.com/openclob/bookmatch/pkg/config"
	"github.com/openclob/bookmatch/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
		cancel()
	}()

	source, err := newOrderSource(cfg.Source)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "open_order_source"})
		os.Exit(1)
	}
	defer source.Close()

	sink, err := newTradeSink(cfg.Sink)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "open_trade_sink"})
		os.Exit(1)
	}
	defer sink.Close()

	log.Info("Order book started",
		logger.Field{Key: "source", Value: cfg.Source.Kind},
		logger.Field{Key: "sink", Value: cfg.Sink.Kind},
	)

	eng := app.New(source, sink, log, nil)
	if err := eng.Run(ctx); err != nil && err != context.Canceled {
		log.Error(err, logger.Field{Key: "action", Value: "run_engine"})
		os.Exit(1)
	}

	log.Info("Order book shutdown complete")
	_ = log.Sync()
}

// newOrderSource builds the configured order source.
func newOrderSource(cfg config.SourceConfig) (ordersourcev1.OrderSource, error) {
	switch cfg.Kind {
	case "file":
		return ordersource.NewFileSource(cfg.Path, log)
	case "pipe":
		return ordersource.NewPipeSource(cfg.PipeName, cfg.OpenRetries, cfg.OpenBackoff, log)
	case "kafka":
		return ordersource.NewKafkaSource(cfg.Kafka, log), nil
	case "generator":
		return ordersource.NewGenerator(cfg.Generator), nil
	default:
		return nil, fmt.Errorf("unknown order source kind %q", cfg.Kind)
	}
}

// newTradeSink builds the configured trade sink.
func newTradeSink(cfg config.SinkConfig) (tradesinkv1.TradeSink, error) {
	switch cfg.Kind {
	case "csv":
		return tradesink.NewCSVSink(cfg.Path, log)
	case "kafka":
		return tradesink.NewKafkaSink(cfg.Kafka, log), nil
	case "redis":
		return tradesink.NewRedisSink(cfg.Redis, log), nil
	default:
		return nil, fmt.Errorf("unknown trade sink kind %q", cfg.Kind)
	}
}
