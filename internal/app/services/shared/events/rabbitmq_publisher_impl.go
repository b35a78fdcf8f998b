package events

import (
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/dto/requests"
	"patient-record-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.PatientEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue)
	}

	return newRabbitMQPublisher(channel, queue, logger), nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *requests.PatientEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
		"event":            event.Event,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingEventNameKey, event.Event),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.Channel.Close()
}
