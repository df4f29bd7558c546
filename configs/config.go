package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	LoanPeriodDays    int
	OverdueScanPeriod time.Duration
	AuditExportPeriod time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	loanPeriodDays := 14
	if val := os.Getenv("LOAN_PERIOD_DAYS"); val != "" {
		if _, err := fmt.Sscanf(val, "%d", &loanPeriodDays); err != nil {
			log.Fatalf("Invalid LOAN_PERIOD_DAYS: %v", err)
		}
	}

	overdueScanPeriod := 24 * time.Hour
	if val := os.Getenv("OVERDUE_SCAN_PERIOD"); val != "" {
		overdueScanPeriod, err = time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid OVERDUE_SCAN_PERIOD: %v", err)
		}
	}

	auditExportPeriod := 30 * time.Second
	if val := os.Getenv("AUDIT_EXPORT_PERIOD"); val != "" {
		auditExportPeriod, err = time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid AUDIT_EXPORT_PERIOD: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:              port,
		MongoURI:          os.Getenv("MONGO_URI"),
		DBName:            os.Getenv("DB_NAME"),
		LoanPeriodDays:    loanPeriodDays,
		OverdueScanPeriod: overdueScanPeriod,
		AuditExportPeriod: auditExportPeriod,
	}
}
