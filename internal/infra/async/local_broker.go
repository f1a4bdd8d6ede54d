package async

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

type subscriber struct {
	once         sync.Once
	done         chan struct{}
	subscription Subscription
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.done)
	})
}

// send delivers the message unless the subscriber has left. A delivery
// blocked on an unread receiver is released by the done channel instead of
// racing a channel close.
func (s *subscriber) send(msg BrokerMessage) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.subscription.Receiver <- msg:
	case <-s.done:
	}
}

// LocalBroker is an in-process publish/subscribe fan-out. Delivery is
// asynchronous; a message published to a topic without subscribers is
// silently dropped. Receiver channels are never closed: consumers stop
// through their own context and delivery stops on Unsubscribe or Stop.
type LocalBroker struct {
	mu     sync.RWMutex
	topics map[BrokerTopicName][]*subscriber
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		topics: make(map[BrokerTopicName][]*subscriber),
	}
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage),
	}
	b.topics[topic] = append(b.topics[topic], &subscriber{subscription: subscription, done: make(chan struct{})})
	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.topics[topic] {
		if s.subscription.ID == subscription.ID {
			s.close()
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	subscribers := make([]*subscriber, len(b.topics[topic]))
	copy(subscribers, b.topics[topic])
	b.mu.RUnlock()

	go func() {
		for _, s := range subscribers {
			s.send(msg)
		}
	}()

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subscribers := range b.topics {
		for _, s := range subscribers {
			s.close()
		}
	}
}
