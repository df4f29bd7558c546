package daemon

import (
	"context"
	"log"
	"time"

	"github.com/kfir19/MyLibrary/internal/catalog"
	"github.com/kfir19/MyLibrary/internal/models"
)

// OverdueLister is the slice of the catalog service the scanner needs.
type OverdueLister interface {
	ListOverdue(ctx context.Context, asOf time.Time) ([]models.Book, error)
}

// OverdueScanner periodically lists overdue books and logs one line per
// book. It fires once immediately on start and then on every period. A
// failed firing is logged and the schedule continues.
type OverdueScanner struct {
	Catalog OverdueLister
	Period  time.Duration
}

// Start launches the scan loop on its own goroutine. The loop stops when ctx
// is cancelled.
func (s *OverdueScanner) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *OverdueScanner) run(ctx context.Context) {
	period := s.Period
	if period <= 0 {
		period = 24 * time.Hour
	}

	s.scan(ctx)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Overdue scanner stopped")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *OverdueScanner) scan(ctx context.Context) {
	books, err := s.Catalog.ListOverdue(ctx, catalog.Today())
	if err != nil {
		log.Printf("Overdue scan failed: %v", err)
		return
	}

	for _, b := range books {
		if b.DueDate == nil {
			continue
		}
		log.Printf("%s was due in %s", b.Title, b.DueDate.Format("2006-01-02"))
	}
}
