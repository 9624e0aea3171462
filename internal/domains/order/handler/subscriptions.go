package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"eats-backend/internal/domains/order/model"
	"eats-backend/internal/infrastructure/pubsub"
	"eats-backend/internal/shared/middleware"
	"eats-backend/internal/shared/response"
	"eats-backend/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// =====================================================
// WEBSOCKET SUBSCRIPTIONS
// =====================================================

// PendingOrders - GET /v1/subscriptions/pending-orders
// Streams new orders for restaurants owned by the caller.
func (h *Handler) PendingOrders(c *gin.Context) {
	user := middleware.GetUser(c)
	h.stream(c, pubsub.TopicPendingOrders, func(msg pubsub.Message) (interface{}, bool) {
		event, ok := msg.Payload.(model.PendingOrderEvent)
		if !ok || event.OwnerID != user.ID {
			return nil, false
		}
		return event.Order, true
	})
}

// CookedOrders - GET /v1/subscriptions/cooked-orders
// Streams every cooked order to delivery subscribers, unfiltered.
func (h *Handler) CookedOrders(c *gin.Context) {
	h.stream(c, pubsub.TopicCookedOrders, func(msg pubsub.Message) (interface{}, bool) {
		event, ok := msg.Payload.(model.CookedOrderEvent)
		if !ok {
			return nil, false
		}
		return event.Order, true
	})
}

// OrderUpdates - GET /v1/subscriptions/orders/:id
// Streams status updates for one order the caller may see.
func (h *Handler) OrderUpdates(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	user := middleware.GetUser(c)
	h.stream(c, pubsub.TopicOrderUpdates, func(msg pubsub.Message) (interface{}, bool) {
		event, ok := msg.Payload.(model.OrderUpdateEvent)
		if !ok || event.Order.ID != orderID {
			return nil, false
		}
		if !event.Order.CanBeSeenBy(user.ID, user.Role) {
			return nil, false
		}
		return event.Order, true
	})
}

// stream upgrades the connection, subscribes to the topic and forwards
// matching payloads until the client disconnects. Cancelling the
// request context tears the subscription down.
func (h *Handler) stream(c *gin.Context, topic string, filter func(pubsub.Message) (interface{}, bool)) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	messages := h.bus.Subscribe(ctx, topic)

	// Reader goroutine: its only job is to notice the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}
			payload, send := filter(msg)
			if !send {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
