package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"storefront/internal/entities"
	orderservice "storefront/internal/service/order"
	"storefront/pkg/logger"
)

// paymentEvent — событие шлюза о смене статуса платежа.
type paymentEvent struct {
	GatewayOrderID string `json:"gateway_order_id"`
	Status         string `json:"status"`
}

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("gateway_order", event.GatewayOrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	execute, err := h.factory.GetHandler(entities.PaymentStatusType(event.Status))
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("payment.status.changed handler unknown payment status")
		sess.MarkMessage(message, "")
		return false
	}

	err = execute(ctx, event.GatewayOrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler order not found for event")

		case errors.Is(err, orderservice.ErrAlreadyPaid):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler payment already settled")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to settle payment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
