package catalog_test

import (
	"testing"

	"github.com/kfir19/MyLibrary/internal/catalog"
	"github.com/kfir19/MyLibrary/internal/models"
)

func TestIsValidForSave(t *testing.T) {
	tests := []struct {
		name    string
		view    *models.BookView
		isValid bool
	}{
		{"Valid Book", &models.BookView{Title: "Dune", Author: "Herbert", Genre: "SciFi"}, true},
		{"Nil View", nil, false},
		{"Missing Title", &models.BookView{Author: "Herbert", Genre: "SciFi"}, false},
		{"Missing Author", &models.BookView{Title: "Dune", Genre: "SciFi"}, false},
		{"Missing Genre", &models.BookView{Title: "Dune", Author: "Herbert"}, false},
		{"Blank Title", &models.BookView{Title: "   ", Author: "Herbert", Genre: "SciFi"}, false},
		{"Blank Author", &models.BookView{Title: "Dune", Author: "\t", Genre: "SciFi"}, false},
		{"Blank Genre", &models.BookView{Title: "Dune", Author: "Herbert", Genre: " "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.IsValidForSave(tt.view); got != tt.isValid {
				t.Errorf("IsValidForSave() = %v, want %v", got, tt.isValid)
			}
		})
	}
}
