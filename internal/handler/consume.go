package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/openshelf/circulation-service/internal/model"
)

type expireReservations func(ctx context.Context, now time.Time) (int, error)

// Consumer applies the lazy reservation-expiry sweep whenever the scheduler
// collaborator publishes a tick on the expiry topic.
type Consumer struct {
	expireHandler expireReservations
	log           *zap.Logger
}

func NewConsumer(expire expireReservations, log *zap.Logger) *Consumer {
	return &Consumer{
		expireHandler: expire,
		log:           log.Named("consumer"),
	}
}

// Setup may run more than once: the group session is re-established after
// every rebalance, so nothing here can be once-only.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var req model.ExpirySweepRequest
			if err := json.Unmarshal(message.Value, &req); err != nil {
				consumer.log.Error("unmarshal sweep", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}
			if req.Now.IsZero() {
				req.Now = time.Now()
			}

			n, err := consumer.expireHandler(context.Background(), req.Now)
			if err != nil {
				consumer.log.Error("consumer.expireHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("expiry sweep applied",
				zap.Int("expired", n),
				zap.Time("now", req.Now),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
