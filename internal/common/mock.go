package common

import "context"

// MockMessageProducer records published messages instead of talking to a
// broker. Used by service tests that do not need a running RabbitMQ.
type MockMessageProducer struct {
	Messages [][]byte
	Keys     []BindingKey
}

func (m *MockMessageProducer) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	m.Messages = append(m.Messages, msg)
	m.Keys = append(m.Keys, key)
	return nil
}
