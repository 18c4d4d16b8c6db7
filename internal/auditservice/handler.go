package auditservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bloglistapp/bloglist/internal/common"
)

func NewAuditService(mb common.MessageConsumer, logger AuditLogger) *AuditService {
	ctx, cancel := context.WithCancel(context.Background())
	return &AuditService{
		mb:     mb,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Run consumes the audit queue and writes one structured log line per event.
func (s *AuditService) Run() {
	msgs, err := s.mb.Consume("", common.EventExchange, common.AuditQueue)
	if err != nil {
		s.logger.Error("could not consume audit queue", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var data event
				err := json.Unmarshal(msg.Body, &data)
				if err != nil {
					s.logger.Error("could not unmarshal audit event", slog.String("error", err.Error()))
					_ = msg.Ack(false)
					continue
				}

				switch common.BindingKey(msg.RoutingKey) {
				case common.UserRegisteredKey:
					s.logger.Info("user registered", slog.String("username", data.Username))
				case common.BlogCreatedKey:
					s.logger.Info("blog created", slog.String("title", data.Title), slog.String("author", data.Author))
				default:
					s.logger.Info("event received", slog.String("key", msg.RoutingKey))
				}

				_ = msg.Ack(false)

			case <-s.ctx.Done():
				s.logger.Info("stopping audit consumer")
				return
			}
		}
	}()
}

func (s *AuditService) Close() {
	s.cancel()
}
