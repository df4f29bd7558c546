package catalog_test

import (
	"testing"
	"time"

	"github.com/kfir19/MyLibrary/internal/catalog"
)

func TestToday_DateGranularity(t *testing.T) {
	today := catalog.Today()

	if today.Location() != time.UTC {
		t.Errorf("Today() location = %v, want UTC", today.Location())
	}
	h, m, s := today.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("Today() = %v, want midnight", today)
	}
}

func TestDueDate(t *testing.T) {
	want := catalog.Today().AddDate(0, 0, 14)
	if got := catalog.DueDate(14); !got.Equal(want) {
		t.Errorf("DueDate(14) = %v, want %v", got, want)
	}

	if got := catalog.DueDate(0); !got.Equal(catalog.Today()) {
		t.Errorf("DueDate(0) = %v, want today", got)
	}
}
