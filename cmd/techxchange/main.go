package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/techxchange/internal/adapter/auth"
	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/adapter/handler/http"
	"github.com/MikeRez0/techxchange/internal/adapter/logger"
	"github.com/MikeRez0/techxchange/internal/adapter/metrics"
	"github.com/MikeRez0/techxchange/internal/adapter/notifier"
	"github.com/MikeRez0/techxchange/internal/adapter/publisher"
	"github.com/MikeRez0/techxchange/internal/adapter/storage"
	"github.com/MikeRez0/techxchange/internal/adapter/storage/mongo"
	"github.com/MikeRez0/techxchange/internal/adapter/storage/repository"
	"github.com/MikeRez0/techxchange/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

//	@title						TechXchange API
//	@version					1.0
//	@description				Marketplace for second-hand tech: listings, orders, reviews and notifications.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	if err := run(conf, log); err != nil {
		log.Error("techxchange stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	defer db.Close()
	err = db.RunMigrations()
	if err != nil {
		return fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		return fmt.Errorf("repository creating error: %w", err)
	}

	store, err := mongo.NewNotificationStore(ctx, conf.Mongo)
	if err != nil {
		return fmt.Errorf("notification store error: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn("notification store close error", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	dispatcher, err := notifier.NewDispatcher(conf.Notify, store, m, log.Named("Notifier"))
	if err != nil {
		return fmt.Errorf("notifier creating error: %w", err)
	}
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workersCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	events := publisher.Fanout{m}
	kafkaPublisher, err := publisher.NewKafkaPublisher(conf.Kafka, log.Named("Kafka"))
	switch {
	case errors.Is(err, publisher.ErrDisabled):
		log.Info("no kafka brokers configured, order events are not streamed")
	case err != nil:
		return fmt.Errorf("kafka publisher creating error: %w", err)
	default:
		events = append(events, kafkaPublisher)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Warn("kafka publisher close error", zap.Error(err))
			}
		}()
	}

	tokenService, err := auth.New(conf.Token)
	if err != nil {
		return fmt.Errorf("token service creating error: %w", err)
	}

	userService, err := service.NewUserService(repo, tokenService, log.Named("User service"))
	if err != nil {
		return fmt.Errorf("user service creating error: %w", err)
	}
	productService, err := service.NewProductService(repo, dispatcher, log.Named("Product service"))
	if err != nil {
		return fmt.Errorf("product service creating error: %w", err)
	}
	orderService, err := service.NewOrderService(repo, dispatcher, events, log.Named("Order service"))
	if err != nil {
		return fmt.Errorf("order service creating error: %w", err)
	}
	notificationService, err := service.NewNotificationService(store, log.Named("Notification service"))
	if err != nil {
		return fmt.Errorf("notification service creating error: %w", err)
	}
	reviewService, err := service.NewReviewService(repo, log.Named("Review service"))
	if err != nil {
		return fmt.Errorf("review service creating error: %w", err)
	}
	savedItemService, err := service.NewSavedItemService(repo, log.Named("Saved item service"))
	if err != nil {
		return fmt.Errorf("saved item service creating error: %w", err)
	}

	var handlers http.Handlers
	if handlers.User, err = http.NewUserHandler(userService, log.Named("User handler")); err != nil {
		return fmt.Errorf("user handler creating error: %w", err)
	}
	if handlers.Product, err = http.NewProductHandler(productService, log.Named("Product handler")); err != nil {
		return fmt.Errorf("product handler creating error: %w", err)
	}
	if handlers.Order, err = http.NewOrderHandler(orderService, log.Named("Order handler")); err != nil {
		return fmt.Errorf("order handler creating error: %w", err)
	}
	if handlers.Notification, err = http.NewNotificationHandler(notificationService,
		log.Named("Notification handler")); err != nil {
		return fmt.Errorf("notification handler creating error: %w", err)
	}
	if handlers.Review, err = http.NewReviewHandler(reviewService, log.Named("Review handler")); err != nil {
		return fmt.Errorf("review handler creating error: %w", err)
	}
	if handlers.SavedItem, err = http.NewSavedItemHandler(savedItemService, log.Named("Saved item handler")); err != nil {
		return fmt.Errorf("saved item handler creating error: %w", err)
	}

	r, err := http.NewRouter(conf.App, tokenService, m, handlers, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	srv := &stdhttp.Server{
		Addr:              conf.HTTP.HostString,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("address", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, stdhttp.ErrServerClosed) {
			return fmt.Errorf("router serve error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
