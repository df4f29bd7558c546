package utils

import (
	"log"

	"github.com/kfir19/MyLibrary/internal/models"
)

// ExportData ships audit records to the external sink. Currently a log line
// per record until the sink endpoint is provisioned.
func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		log.Println(entry.Timestamp, entry.Entity, entry.Action, entry.Data)
	}
	return nil
}
