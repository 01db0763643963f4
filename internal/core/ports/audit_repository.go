package ports

import (
	"context"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// AuditRepository appends authentication events to the audit trail.
type AuditRepository interface {
	Append(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink is the write side handed to the auth service; the queue
// dispatcher implements it asynchronously on top of an AuditRepository.
type AuditSink interface {
	Record(event domain.AuthEvent)
}
