package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billing_insurance/internal/adapter/http/handlers"
	"billing_insurance/internal/adapter/http/middleware"
	"billing_insurance/internal/adapter/http/routes"
	"billing_insurance/internal/adapter/http/validation"
	"billing_insurance/internal/adapter/persistence/repository"
	"billing_insurance/internal/infrastructure/auth"
	"billing_insurance/internal/infrastructure/cache"
	"billing_insurance/internal/infrastructure/config"
	"billing_insurance/internal/infrastructure/database"
	"billing_insurance/internal/infrastructure/logger"
	"billing_insurance/internal/infrastructure/notification"
	"billing_insurance/internal/infrastructure/payments"
	"billing_insurance/internal/infrastructure/users"
	"billing_insurance/internal/usecase"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// app holds everything opened at startup that must be released on shutdown.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	deps    usecase.Dependencies
	idp     middleware.IdentityProvider
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func runServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validation.Register(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		log.Error("[app][startup] wiring failed", zap.Error(err))
		return err
	}
	defer a.close()

	router := routes.NewRouter(buildHandlers(a.deps, log), a.idp, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[app][startup] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("[app][server] stopped unexpectedly", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[app][shutdown] draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("[app][shutdown] graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	tables := tablesFromConfig(cfg)

	deps := usecase.Dependencies{
		Invoices: repository.NewInvoiceDynamoRepository(ddb, tables.Invoices, tables.Counters),
		Payments: repository.NewPaymentDynamoRepository(ddb, tables.Payments),
		Policies: repository.NewInsurancePolicyDynamoRepository(ddb, tables.Policies, tables.Counters),
		Claims:   repository.NewInsuranceClaimDynamoRepository(ddb, tables.Claims),
		Ledger:   repository.NewLedgerDynamoRepository(ddb, tables),
		Sequence: repository.NewInvoiceSequenceDynamoRepository(ddb, tables.Counters),
		Log:      log,
		DueDays:  cfg.InvoiceDueDays,
	}

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.NewRedisClient(ctx, cfg)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		deps.Sequence = cache.NewInvoiceSequence(rdb)
		deps.Locker = cache.NewInvoiceLocker(rdb, log)
		log.Info("[app][startup] redis enabled for invoice numbers and leases", zap.String("addr", cfg.RedisAddr))
	}

	if cfg.UserServiceURL != "" {
		var dir interfaces.IUserDirectory = users.NewHTTPUserDirectory(cfg.UserServiceURL, httpClient)
		if rdb != nil {
			dir = cache.NewCachedUserDirectory(dir, rdb, log)
		}
		deps.Users = dir
	}

	notifier, err := a.buildNotifier(httpClient)
	if err != nil {
		a.close()
		return nil, err
	}
	if notifier != nil {
		dispatcher := notification.NewDispatcher(notifier, cfg.NotificationBuffer, log)
		a.closers = append(a.closers, dispatcher.Close)
		deps.Notifier = dispatcher
	}

	gateway, err := payments.NewMercadoPagoGateway(payments.MercadoPagoOptions{
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerID,
		Mock:            cfg.PaymentGatewayMock,
	}, log)
	if err != nil {
		log.Warn("[app][startup] payment gateway disabled", zap.Error(err))
	} else {
		deps.Gateway = gateway
	}

	if cfg.AuthDisabled {
		log.Warn("[app][startup] authentication disabled")
	} else {
		a.idp = auth.NewJWTProvider(cfg.JWTSecret)
	}

	a.deps = deps
	return a, nil
}

// buildNotifier returns the transport selected by NOTIFICATION_TRANSPORT, or nil
// when notifications are switched off.
func (a *app) buildNotifier(client *http.Client) (interfaces.INotifier, error) {
	switch a.cfg.NotificationTransport {
	case config.NotificationTransportHTTP:
		if a.cfg.NotificationServiceURL == "" {
			a.log.Warn("[app][startup] NOTIFICATION_SERVICE_URL not set, notifications disabled")
			return nil, nil
		}
		return notification.NewHTTPNotifier(a.cfg.NotificationServiceURL, client), nil
	case config.NotificationTransportAMQP:
		conn, err := amqp.Dial(a.cfg.AMQPURL)
		if err != nil {
			return nil, fmt.Errorf("connect to amqp: %w", err)
		}
		n, err := notification.NewAMQPNotifier(conn, a.cfg.NotificationQueue, a.log)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() {
			_ = n.Close()
			_ = conn.Close()
		})
		return n, nil
	default:
		return nil, nil
	}
}

func buildHandlers(deps usecase.Dependencies, log *zap.Logger) routes.Handlers {
	invoices := usecase.NewInvoiceUseCase(deps)
	return routes.Handlers{
		Invoices:         handlers.NewInvoiceHandler(invoices, log),
		InternalInvoices: handlers.NewInternalInvoiceHandler(invoices, log),
		Payments:         handlers.NewPaymentHandler(usecase.NewPaymentUseCase(deps), log),
		Policies:         handlers.NewInsurancePolicyHandler(usecase.NewInsurancePolicyUseCase(deps), log),
		Claims:           handlers.NewInsuranceClaimHandler(usecase.NewInsuranceClaimUseCase(deps), log),
	}
}

func tablesFromConfig(cfg *config.Config) repository.Tables {
	return repository.Tables{
		Invoices: cfg.InvoicesTable,
		Payments: cfg.PaymentsTable,
		Policies: cfg.PoliciesTable,
		Claims:   cfg.ClaimsTable,
		Counters: cfg.CountersTable,
	}
}
