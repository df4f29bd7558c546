package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kfir19/MyLibrary/internal/models"
)

const DefaultLoanPeriodDays = 14

// Store is the persistence surface the catalog needs. It is implemented by
// store.BookStore; lookups that match nothing return ErrNotFound. The
// conditional Borrow/Return updates also return ErrNotFound when no document
// matched their availability filter.
type Store interface {
	Insert(ctx context.Context, book models.Book) error
	FindByID(ctx context.Context, id string) (models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	FindAllByTitle(ctx context.Context, title string) ([]models.Book, error)
	FindAllByAuthor(ctx context.Context, author string) ([]models.Book, error)
	FindAllByGenre(ctx context.Context, genre string) ([]models.Book, error)
	FindAllByAvailability(ctx context.Context, isAvailable bool) ([]models.Book, error)
	FindAllDueBefore(ctx context.Context, asOf time.Time) ([]models.Book, error)
	Replace(ctx context.Context, book models.Book) (models.Book, error)
	SetBorrowed(ctx context.Context, id string, borrowed, due time.Time) (models.Book, error)
	SetReturned(ctx context.Context, id string) (models.Book, error)
}

// Service implements book CRUD and the borrow/return transitions on top of a
// Store.
type Service struct {
	store    Store
	loanDays int
}

func NewService(store Store, loanPeriodDays int) *Service {
	if loanPeriodDays <= 0 {
		loanPeriodDays = DefaultLoanPeriodDays
	}
	return &Service{store: store, loanDays: loanPeriodDays}
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Book, error) {
	return s.store.FindByID(ctx, id)
}

// ListAll returns every book sorted by title ascending. An empty catalog is
// an empty slice, not an error.
func (s *Service) ListAll(ctx context.Context) ([]models.Book, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) ListByTitle(ctx context.Context, title string) ([]models.Book, error) {
	return s.store.FindAllByTitle(ctx, title)
}

func (s *Service) ListByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return s.store.FindAllByAuthor(ctx, author)
}

func (s *Service) ListByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return s.store.FindAllByGenre(ctx, genre)
}

func (s *Service) ListByAvailability(ctx context.Context, isAvailable bool) ([]models.Book, error) {
	return s.store.FindAllByAvailability(ctx, isAvailable)
}

// ListOverdue returns books whose due date is strictly before asOf.
func (s *Service) ListOverdue(ctx context.Context, asOf time.Time) ([]models.Book, error) {
	return s.store.FindAllDueBefore(ctx, asOf)
}

// Create validates the view, assigns a fresh id and persists the book as
// available with no borrow or due dates. Any id or dates on the view are
// ignored.
func (s *Service) Create(ctx context.Context, view *models.BookView) (models.Book, error) {
	if !IsValidForSave(view) {
		return models.Book{}, fmt.Errorf("%w: unable to create new book", ErrInvalidData)
	}

	book := models.Book{
		ID:          uuid.NewString(),
		Title:       view.Title,
		Author:      view.Author,
		Genre:       view.Genre,
		IsAvailable: true,
	}

	if err := s.store.Insert(ctx, book); err != nil {
		return models.Book{}, err
	}
	return book, nil
}

// Update overwrites title, author, genre and both dates of an existing book.
// The availability flag is never touched by update. Validation runs before
// the existence lookup.
func (s *Service) Update(ctx context.Context, view *models.BookView) (models.Book, error) {
	if !IsValidForSave(view) {
		return models.Book{}, fmt.Errorf("%w: unable to update book", ErrInvalidData)
	}

	book, err := s.store.FindByID(ctx, view.ID)
	if err != nil {
		return models.Book{}, err
	}

	book.Title = view.Title
	book.Author = view.Author
	book.Genre = view.Genre
	book.DueDate = view.DueDate
	book.BorrowedDate = view.BorrowedDate

	return s.store.Replace(ctx, book)
}

// Borrow transitions an available book to borrowed, stamping the borrow date
// and a due date loanDays ahead. The store update is conditional on the book
// still being available, so two concurrent borrows cannot both succeed.
func (s *Service) Borrow(ctx context.Context, id string) (models.Book, error) {
	borrowed := Today()
	due := DueDate(s.loanDays)

	book, err := s.store.SetBorrowed(ctx, id, borrowed, due)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Book{}, err
	}
	return models.Book{}, s.transitionError(ctx, id, "you are trying to borrow an unavailable book")
}

// Return transitions a borrowed book back to available, clearing both dates.
func (s *Service) Return(ctx context.Context, id string) (models.Book, error) {
	book, err := s.store.SetReturned(ctx, id)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Book{}, err
	}
	return models.Book{}, s.transitionError(ctx, id, "you are trying to return a book that is already returned")
}

// transitionError disambiguates a zero-match conditional update: the book is
// either absent or in the opposite status.
func (s *Service) transitionError(ctx context.Context, id, wrongStatusMsg string) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", ErrWrongStatus, wrongStatusMsg)
}
