package async_test

import (
	"context"

	"esg-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		topic = "form.submissions"
		ctx = context.TODO()
	})

	Context("Publish", func() {
		When("a single subscriber is registered", func() {
			It("delivers the message", func() {
				subscription, _ := broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{Event: "submission_accepted", Value: "session-1"})

				Eventually(subscription.Receiver).Should(Receive(And(
					HaveField("Event", "submission_accepted"),
					HaveField("Value", "session-1"),
				)))
			})
		})

		When("multiple subscribers are registered", func() {
			It("fans the message out to all of them", func() {
				first, _ := broker.Subscribe(topic)
				second, _ := broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{Event: "snapshot_refreshed"})

				Eventually(first.Receiver).Should(Receive())
				Eventually(second.Receiver).Should(Receive())
			})
		})

		When("the topic has no subscribers", func() {
			It("drops the message without error", func() {
				Expect(broker.Publish(ctx, topic, async.BrokerMessage{})).To(Succeed())
			})
		})
	})

	Context("Unsubscribe", func() {
		It("stops delivery to the subscriber", func() {
			subscription, _ := broker.Subscribe(topic)

			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())
			broker.Publish(ctx, topic, async.BrokerMessage{Event: "submission_accepted"})

			Consistently(subscription.Receiver).ShouldNot(Receive())
		})

		It("releases a delivery blocked on an unread receiver", func() {
			subscription, _ := broker.Subscribe(topic)

			broker.Publish(ctx, topic, async.BrokerMessage{Event: "value_set"})
			Expect(broker.Unsubscribe(topic, subscription)).To(Succeed())

			Consistently(subscription.Receiver).ShouldNot(Receive())
		})

		It("fails for an unknown subscription", func() {
			err := broker.Unsubscribe(topic, async.Subscription{ID: "missing"})
			Expect(err).To(MatchError(async.ErrSubscriptionNotFound))
		})
	})

	Context("Stop", func() {
		It("stops delivery to every subscriber", func() {
			subscription, _ := broker.Subscribe(topic)

			broker.Stop()
			broker.Publish(ctx, topic, async.BrokerMessage{Event: "snapshot_refreshed"})

			Consistently(subscription.Receiver).ShouldNot(Receive())
		})
	})
})
