package auditservice

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bloglistapp/bloglist/internal/common"
)

type MockMessageConsumer struct {
	Messages []amqp.Delivery
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	msgsChan := make(chan amqp.Delivery)

	go func() {
		defer close(msgsChan)

		for _, msg := range m.Messages {
			msgsChan <- msg
		}
	}()

	return msgsChan, nil
}
