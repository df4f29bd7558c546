package daemon

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kfir19/MyLibrary/internal/models"
	"github.com/kfir19/MyLibrary/internal/utils"
)

// LogExporter ships unexported audit records out of the audit collection on
// a fixed period and marks them exported.
type LogExporter struct {
	Coll   *mongo.Collection
	Period time.Duration
}

func (l *LogExporter) Start(ctx context.Context) {
	go l.run(ctx)
}

func (l *LogExporter) run(ctx context.Context) {
	period := l.Period
	if period <= 0 {
		period = 30 * time.Second
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.export(ctx)
		}
	}
}

func (l *LogExporter) export(ctx context.Context) {
	res, err := l.Coll.Find(ctx, bson.M{"exported": false})
	if err != nil {
		log.Printf("Audit export query failed: %v", err)
		return
	}

	var logs []models.AuditLog
	if err := res.All(ctx, &logs); err != nil {
		log.Printf("Audit export decode failed: %v", err)
		return
	}
	if len(logs) == 0 {
		return
	}

	if err := utils.ExportData(logs); err != nil {
		log.Printf("Audit export failed: %v", err)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	_, err = l.Coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"exported": true}},
	)
	if err != nil {
		log.Printf("Audit export mark failed: %v", err)
	}
}
