package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/sua-pizza-api/internal/logger"
)

const consumerTag = "sua-pizza-boas-vindas"

// WelcomeSender define o contrato de quem envia a mensagem de boas-vindas.
type WelcomeSender interface {
	SendWelcome(to, name string) error
}

// Consumer é satisfeito por *amqp.Channel.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
}

type Worker struct {
	Channel Consumer
	Sender  WelcomeSender
}

func NewWorker(ch Consumer, sender WelcomeSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

// Start consome a fila até o contexto ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		consumerTag,
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	logger.Log.Info("worker aguardando na fila", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			_ = w.Channel.Cancel(consumerTag, false)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de entregas fechado pelo broker")
			}
			w.handle(d)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) {
	var payload CustomerRegisteredPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		logger.Log.Error("payload inválido, enviando para DLQ",
			zap.String("message_id", d.MessageId),
			zap.Error(err),
		)
		_ = d.Nack(false, false)
		return
	}

	if payload.Email == "" {
		// nada a enviar; confirma para tirar da fila
		logger.Log.Warn("cliente sem email, boas-vindas ignorada", zap.String("customer_id", payload.CustomerID))
		_ = d.Ack(false)
		return
	}

	if err := w.Sender.SendWelcome(payload.Email, payload.Name); err != nil {
		logger.Log.Error("falha ao enviar boas-vindas",
			zap.String("customer_id", payload.CustomerID),
			zap.Error(err),
		)
		_ = d.Nack(false, false)
		return
	}

	logger.Log.Info("boas-vindas enviada", zap.String("customer_id", payload.CustomerID))
	_ = d.Ack(false)
}
