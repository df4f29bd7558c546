package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kfir19/MyLibrary/internal/models"
)

// Logger appends audit records to a Mongo collection. Records start
// unexported; the audit export daemon picks them up later.
type Logger struct {
	Collection *mongo.Collection
}

func (l *Logger) Log(ctx context.Context, entity, action string, data any) error {
	if l.Collection == nil {
		return nil
	}
	entry := models.AuditLog{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		Data:      data,
		Exported:  false,
	}
	_, err := l.Collection.InsertOne(ctx, entry)
	return err
}
