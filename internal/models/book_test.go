package models_test

import (
	"testing"
	"time"

	"github.com/kfir19/MyLibrary/internal/models"
)

func TestBookView(t *testing.T) {
	due := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	borrowed := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	book := models.Book{
		ID:           "b1",
		Title:        "Dune",
		Author:       "Herbert",
		Genre:        "SciFi",
		IsAvailable:  false,
		BorrowedDate: &borrowed,
		DueDate:      &due,
	}

	view := book.View()

	if view.ID != book.ID || view.Title != book.Title || view.Author != book.Author || view.Genre != book.Genre {
		t.Errorf("View() = %+v, want fields of %+v", view, book)
	}
	if view.IsAvailable != book.IsAvailable {
		t.Errorf("View().IsAvailable = %v, want %v", view.IsAvailable, book.IsAvailable)
	}
	if view.BorrowedDate != book.BorrowedDate || view.DueDate != book.DueDate {
		t.Errorf("View() dates do not match entity")
	}
}

func TestViewsOf_NeverNil(t *testing.T) {
	views := models.ViewsOf(nil)
	if views == nil {
		t.Fatal("ViewsOf(nil) = nil, want empty slice")
	}
	if len(views) != 0 {
		t.Errorf("ViewsOf(nil) has %d elements", len(views))
	}

	views = models.ViewsOf([]models.Book{{ID: "b1"}, {ID: "b2"}})
	if len(views) != 2 {
		t.Fatalf("ViewsOf() has %d elements, want 2", len(views))
	}
	if views[0].ID != "b1" || views[1].ID != "b2" {
		t.Errorf("ViewsOf() order not preserved: %+v", views)
	}
}
