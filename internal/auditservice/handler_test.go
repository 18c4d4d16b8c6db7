package auditservice

import (
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"github.com/bloglistapp/bloglist/internal/common"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(msg string, args ...any) {}

func (l *recordingLogger) recorded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

func TestAuditService_Run(t *testing.T) {
	mb := &MockMessageConsumer{
		Messages: []amqp.Delivery{
			{RoutingKey: string(common.UserRegisteredKey), Body: []byte(`{"Username": "testuser"}`)},
			{RoutingKey: string(common.BlogCreatedKey), Body: []byte(`{"Title": "HTML is easy", "Author": "testuser"}`)},
		},
	}

	logger := &recordingLogger{}

	s := NewAuditService(mb, logger)
	defer s.Close()

	s.Run()

	assert.Eventually(t, func() bool {
		infos := logger.recorded()
		return len(infos) == 2 && infos[0] == "user registered" && infos[1] == "blog created"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAuditService_BadPayload(t *testing.T) {
	mb := &MockMessageConsumer{
		Messages: []amqp.Delivery{
			{RoutingKey: string(common.UserRegisteredKey), Body: []byte(`not json`)},
			{RoutingKey: string(common.UserRegisteredKey), Body: []byte(`{"Username": "testuser"}`)},
		},
	}

	logger := &recordingLogger{}

	s := NewAuditService(mb, logger)
	defer s.Close()

	s.Run()

	// the malformed message is skipped, the next one still lands
	assert.Eventually(t, func() bool {
		infos := logger.recorded()
		return len(infos) == 1 && infos[0] == "user registered"
	}, 2*time.Second, 10*time.Millisecond)
}
