package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kfir19/MyLibrary/internal/catalog"
	"github.com/kfir19/MyLibrary/internal/constants"
	"github.com/kfir19/MyLibrary/internal/models"
	"github.com/kfir19/MyLibrary/internal/utils"
)

// Catalog is the surface of the catalog service the HTTP facade depends on.
type Catalog interface {
	GetByID(ctx context.Context, id string) (models.Book, error)
	ListAll(ctx context.Context) ([]models.Book, error)
	ListByTitle(ctx context.Context, title string) ([]models.Book, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Book, error)
	ListByGenre(ctx context.Context, genre string) ([]models.Book, error)
	ListByAvailability(ctx context.Context, isAvailable bool) ([]models.Book, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]models.Book, error)
	Create(ctx context.Context, view *models.BookView) (models.Book, error)
	Update(ctx context.Context, view *models.BookView) (models.Book, error)
	Borrow(ctx context.Context, id string) (models.Book, error)
	Return(ctx context.Context, id string) (models.Book, error)
}

type BookHandler struct {
	Catalog     Catalog
	AuditLogger utils.Logger
}

func NewBookHandler(cat Catalog, logger utils.Logger) *BookHandler {
	return &BookHandler{Catalog: cat, AuditLogger: logger}
}

// GET /books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	books, err := h.Catalog.ListAll(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(models.ViewsOf(books))
}

// GET /books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := requestContext(r)
	defer cancel()

	book, err := h.Catalog.GetByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(book.View())
}

// GET /books/title/{title}
func (h *BookHandler) GetBooksByTitle(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context) ([]models.Book, error) {
		return h.Catalog.ListByTitle(ctx, mux.Vars(r)["title"])
	})
}

// GET /books/author/{author}
func (h *BookHandler) GetBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context) ([]models.Book, error) {
		return h.Catalog.ListByAuthor(ctx, mux.Vars(r)["author"])
	})
}

// GET /books/genre/{genre}
func (h *BookHandler) GetBooksByGenre(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context) ([]models.Book, error) {
		return h.Catalog.ListByGenre(ctx, mux.Vars(r)["genre"])
	})
}

// GET /books/allAvailable
func (h *BookHandler) GetAvailableBooks(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context) ([]models.Book, error) {
		return h.Catalog.ListByAvailability(ctx, true)
	})
}

// GET /books/dateIsDue
func (h *BookHandler) GetOverdueBooks(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context) ([]models.Book, error) {
		return h.Catalog.ListOverdue(ctx, catalog.Today())
	})
}

func (h *BookHandler) listBy(w http.ResponseWriter, r *http.Request, list func(ctx context.Context) ([]models.Book, error)) {
	ctx, cancel := requestContext(r)
	defer cancel()

	books, err := list(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(models.ViewsOf(books))
}

// POST /books/create
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var view models.BookView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	book, err := h.Catalog.Create(ctx, &view)
	if err != nil {
		writeError(w, err)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Create, book)

	json.NewEncoder(w).Encode(book.View())
}

// PUT /books/update
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	var view models.BookView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		utils.JSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	book, err := h.Catalog.Update(ctx, &view)
	if err != nil {
		writeError(w, err)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Update, book)

	json.NewEncoder(w).Encode(book.View())
}

// POST /books/borrow/{id}
func (h *BookHandler) BorrowBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := requestContext(r)
	defer cancel()

	book, err := h.Catalog.Borrow(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Borrow, book)

	json.NewEncoder(w).Encode(book.View())
}

// PUT /books/return/{id}
func (h *BookHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := requestContext(r)
	defer cancel()

	book, err := h.Catalog.Return(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.AuditLogger.Log(ctx, models.BookEntity, constants.Return, book)

	json.NewEncoder(w).Encode(book.View())
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidData):
		utils.JSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, catalog.ErrNotFound):
		utils.JSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, catalog.ErrWrongStatus):
		utils.JSONError(w, err.Error(), http.StatusConflict)
	default:
		utils.JSONError(w, "Internal error: "+err.Error(), http.StatusInternalServerError)
	}
}
