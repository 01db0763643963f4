package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository appends authentication events to mongo.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Kind      string `bson:"kind"`
	Subject   string `bson:"subject,omitempty"`
	UserID    string `bson:"user_id,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Append(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Kind:      string(event.Kind),
		Subject:   event.Subject,
		UserID:    event.UserID,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
