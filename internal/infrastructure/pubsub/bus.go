package pubsub

import (
	"context"
	"sync"

	"eats-backend/pkg/logger"
)

// Topics carried by the bus. Subscribers filter payloads themselves;
// the bus only routes by topic.
const (
	TopicPendingOrders = "pendingOrders"
	TopicCookedOrders  = "cookedOrders"
	TopicOrderUpdates  = "orderUpdates"
)

// Message is what subscribers receive.
type Message struct {
	Topic   string
	Payload interface{}
}

// Bus is an injected in-process publish/subscribe abstraction. Publish
// is best-effort fire-and-forget: a publisher never blocks and never
// learns about delivery failures. Subscribe returns a channel that is
// closed when ctx is cancelled, so a disconnecting consumer cannot
// leak its subscription.
type Bus interface {
	Publish(ctx context.Context, topic string, payload interface{})
	Subscribe(ctx context.Context, topic string) <-chan Message
}

const subscriberBuffer = 16

type subscriber struct {
	ch chan Message
}

// InMemoryBus routes messages between goroutines of a single process.
// Topic registrations live in a map guarded by a RWMutex; each
// subscriber owns a buffered channel.
type InMemoryBus struct {
	mu     sync.RWMutex
	topics map[string]map[*subscriber]struct{}
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		topics: make(map[string]map[*subscriber]struct{}),
	}
}

// Publish delivers to every current subscriber of the topic. A
// subscriber whose buffer is full misses the message; delivery is
// at-least-once for consumers that keep up, never guaranteed.
func (b *InMemoryBus) Publish(_ context.Context, topic string, payload interface{}) {
	msg := Message{Topic: topic, Payload: payload}

	// Sends happen under the read lock: unsubscribe closes channels
	// under the write lock, so a send can never hit a closed channel.
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[topic] {
		select {
		case sub.ch <- msg:
		default:
			logger.Warn("pubsub subscriber buffer full, dropping message", map[string]interface{}{
				"topic": topic,
			})
		}
	}
}

// Subscribe registers a consumer for a topic. The returned channel is
// closed when ctx is cancelled.
func (b *InMemoryBus) Subscribe(ctx context.Context, topic string) <-chan Message {
	sub := &subscriber{ch: make(chan Message, subscriberBuffer)}

	b.mu.Lock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*subscriber]struct{})
	}
	b.topics[topic][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(topic, sub)
	}()

	return sub.ch
}

func (b *InMemoryBus) unsubscribe(topic string, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.topics[topic]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			close(sub.ch)
		}
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
}
