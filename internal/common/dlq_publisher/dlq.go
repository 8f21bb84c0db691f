package dlqpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xlog "bitbucket.org/adsa/go-reservation-ledger/internal/common/log"
	"bitbucket.org/adsa/go-reservation-ledger/internal/common/metrics"
	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/Shopify/sarama"
)

const prefixLogMessage = "[DLQ]"

// Publisher parks events that could not be reconciled so they can be replayed later.
type Publisher interface {
	Publish(ctx context.Context, message models.FailedMessage) error
}

type kafkaDlq struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
}

func New(p sarama.SyncProducer, topic string, metrics metrics.Metrics) Publisher {
	return kafkaDlq{p, topic, metrics}
}

func (d kafkaDlq) Publish(ctx context.Context, message models.FailedMessage) (err error) {
	startTime := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.GetDLQPrometheus().RecordPublish(startTime, d.topic, err)
		}
	}()

	msg, err := d.prepareMessage(ctx, message)
	if err != nil {
		xlog.Error(ctx,
			prefixLogMessage,
			xlog.String("status", "prepare kafkaDlq message failed"),
			xlog.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx,
			prefixLogMessage,
			xlog.String("status", "publish kafkaDlq failed"),
			xlog.String("event_id", message.EventID),
			xlog.Err(err))
		return err
	}

	xlog.Info(ctx,
		prefixLogMessage,
		xlog.String("status", "success publish kafkaDlq message"),
		xlog.String("event_id", message.EventID),
		xlog.Time("timestamp", message.Timestamp),
		xlog.String("topic", d.topic),
		xlog.Int64("partition", int64(partition)),
		xlog.Int64("offset", offset),
	)

	return nil
}

func (d kafkaDlq) prepareMessage(ctx context.Context, message models.FailedMessage) (*sarama.ProducerMessage, error) {
	if message.CauseError != nil && message.Error == "" {
		message.Error = message.CauseError.Error()
	}

	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
		Headers: []sarama.RecordHeader{
			{Key: []byte("action"), Value: []byte(message.Action)},
		},
	}
	if id := xlog.GetCorrelationID(ctx); id != "" {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(xlog.HeaderCorrelationID), Value: []byte(id)})
	}
	if message.EventID != "" {
		msg.Key = sarama.StringEncoder(message.EventID)
	}

	return msg, nil
}
