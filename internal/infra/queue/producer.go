package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const EventCustomerRegistered = "cliente.registrado"

type CustomerRegisteredPayload struct {
	CustomerID string   `json:"customer_id"`
	Name       string   `json:"nome"`
	Email      string   `json:"email"`
	Phones     []string `json:"telefones"`
}

// Publisher é satisfeito por *amqp.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	mu sync.Mutex
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishCustomerRegistered(ctx context.Context, payload CustomerRegisteredPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	// canal AMQP não deve ser usado por várias goroutines ao mesmo tempo
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         EventCustomerRegistered,
			Timestamp:    time.Now().UTC(),
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}

// NopProducer é usado quando o RabbitMQ não está configurado.
type NopProducer struct{}

func (NopProducer) PublishCustomerRegistered(context.Context, CustomerRegisteredPayload) error {
	return nil
}
