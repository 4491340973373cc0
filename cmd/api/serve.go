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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/config"
	"github.com/xavierca1/sua-pizza-api/internal/infra/database"
	"github.com/xavierca1/sua-pizza-api/internal/infra/http/handlers"
	"github.com/xavierca1/sua-pizza-api/internal/infra/http/router"
	"github.com/xavierca1/sua-pizza-api/internal/infra/queue"
	"github.com/xavierca1/sua-pizza-api/internal/logger"
	"github.com/xavierca1/sua-pizza-api/internal/usecase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := logger.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		if cfg.JWTSecret != "" {
			logger.Log.Warn("JWT_SECRET configurado, mas nenhuma rota exige autenticação")
		}

		ctx := context.Background()

		// 1. Banco
		store, err := database.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				logger.Log.Warn("erro ao desconectar do MongoDB", zap.Error(err))
			}
		}()
		logger.Log.Info("conectado ao MongoDB", zap.String("database", cfg.MongoDatabase))

		if err := database.EnsureIndexes(ctx, store.DB); err != nil {
			logger.Log.Warn("índices não criados", zap.Error(err))
		}

		// 2. Fila (opcional)
		var producer usecase.QueueProducerInterface = queue.NopProducer{}
		var broker handlers.BrokerStatus
		if cfg.RabbitMQURL != "" {
			rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
			if err != nil {
				return err
			}
			defer rabbitMQ.Close()

			producer = queue.NewProducer(rabbitMQ.Ch)
			broker = rabbitMQ
		} else {
			logger.Log.Info("RABBITMQ_URL vazio, eventos de cadastro não serão publicados")
		}

		// 3. Repositórios
		customerRepo := database.NewCustomerRepository(store.DB)
		addressRepo := database.NewAddressRepository(store.DB)

		// 4. UseCases e Handlers
		customerHandler := handlers.NewCustomerHandler(
			usecase.NewRegisterCustomerUseCase(customerRepo, addressRepo, producer),
			usecase.NewUpdateCustomerUseCase(customerRepo, addressRepo),
			usecase.NewDeleteCustomerUseCase(customerRepo, addressRepo),
			usecase.NewListCustomersUseCase(customerRepo, addressRepo),
		)
		addressHandler := handlers.NewAddressHandler(
			usecase.NewRegisterAddressUseCase(addressRepo),
			usecase.NewUpdateAddressUseCase(addressRepo),
			usecase.NewDeleteAddressUseCase(addressRepo),
			usecase.NewListAddressesUseCase(addressRepo, customerRepo),
		)

		// 5. Router
		r := router.New(router.Handlers{
			Customer: customerHandler,
			Address:  addressHandler,
			Health:   handlers.NewHealthHandler(store, broker),
		})

		server := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("servidor rodando", zap.String("addr", cfg.Addr()))
			errCh <- server.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("sinal recebido, encerrando", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("servidor http encerrado", zap.Error(err))
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Warn("shutdown do servidor http", zap.Error(err))
		}

		return nil
	},
}
