package gateway

import (
	"context"

	"travelin/internal/pkg/constants"
	"travelin/internal/pkg/models"
	nsqpkg "travelin/internal/pkg/nsq"
)

// OrderGW publishes order events to NSQ
type OrderGW struct {
	producer *nsqpkg.Producer
}

// NewOrderGW creates a new order gateway
func NewOrderGW(producer *nsqpkg.Producer) *OrderGW {
	return &OrderGW{
		producer: producer,
	}
}

// PublishOrderStatusChanged publishes a status change event so downstream
// collaborators (receipts, notifications) can react
func (g *OrderGW) PublishOrderStatusChanged(_ context.Context, event models.OrderStatusEvent) error {
	return g.producer.Publish(constants.TopicOrderStatusChanged, event)
}
