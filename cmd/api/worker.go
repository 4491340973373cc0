package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/config"
	"github.com/xavierca1/sua-pizza-api/internal/infra/mail"
	"github.com/xavierca1/sua-pizza-api/internal/infra/queue"
	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume cliente.registrado events and send welcome emails",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := logger.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		if cfg.RabbitMQURL == "" {
			return errors.New("RABBITMQ_URL é obrigatório para o worker")
		}
		if !cfg.Mail.Enabled() {
			return errors.New("MAIL_HOST é obrigatório para o worker")
		}

		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()

		sender := mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Log.Info("worker de boas-vindas iniciado", zap.String("queue", queue.QueueName))

		return queue.NewWorker(rabbitMQ.Ch, sender).Start(ctx, queue.QueueName)
	},
}
