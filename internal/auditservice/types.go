package auditservice

import (
	"context"

	"github.com/bloglistapp/bloglist/internal/common"
)

type AuditService struct {
	mb     common.MessageConsumer
	logger AuditLogger
	ctx    context.Context
	cancel context.CancelFunc
}

type AuditLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// event is the envelope shared by all audit messages. Producers only set the
// fields that apply to their binding key.
type event struct {
	Username string
	Title    string
	Author   string
}
