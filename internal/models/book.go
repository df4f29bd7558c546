package models

import "time"

// Book is the persisted catalog entity. IDs are generated server-side at
// creation and never change.
type Book struct {
	ID           string     `bson:"_id" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Author       string     `bson:"author" json:"author"`
	Genre        string     `bson:"genre" json:"genre"`
	IsAvailable  bool       `bson:"is_available" json:"is_available"`
	BorrowedDate *time.Time `bson:"borrowed_date,omitempty" json:"borrowed_date,omitempty"`
	DueDate      *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
}

const (
	BookEntity = "book"
)

// BookView is the boundary shape for requests and responses. Clients never
// supply ids on create; the server generates them.
type BookView struct {
	ID           string     `json:"id,omitempty"`
	Title        string     `json:"title" validate:"notblank"`
	Author       string     `json:"author" validate:"notblank"`
	Genre        string     `json:"genre" validate:"notblank"`
	IsAvailable  bool       `json:"isAvailable"`
	BorrowedDate *time.Time `json:"borrowedDate,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
}

func (b Book) View() BookView {
	return BookView{
		ID:           b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Genre:        b.Genre,
		IsAvailable:  b.IsAvailable,
		BorrowedDate: b.BorrowedDate,
		DueDate:      b.DueDate,
	}
}

// ViewsOf never returns nil so empty listings encode as [].
func ViewsOf(books []Book) []BookView {
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		views = append(views, b.View())
	}
	return views
}
