package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openshelf/circulation-service/config"
	"github.com/openshelf/circulation-service/internal/handler"
	"github.com/openshelf/circulation-service/internal/repository"
	"github.com/openshelf/circulation-service/internal/server"
	"github.com/openshelf/circulation-service/internal/service"
	"github.com/openshelf/circulation-service/migrations"
	"github.com/openshelf/circulation-service/pkg/kafka"
	"github.com/openshelf/circulation-service/pkg/logger"
	"github.com/openshelf/circulation-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}
	svc := service.NewService(repo, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ExpiryGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	h := handler.New(svc, handler.NewEnqueuer(producer), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, cancel := context.WithCancel(context.Background())
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.ExpireReservations, log), kafka.ExpiryTopic, log)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	if err = g.Wait(); err != nil {
		log.Debug("shutdown", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
