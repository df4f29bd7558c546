package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kfir19/MyLibrary/internal/catalog"
	"github.com/kfir19/MyLibrary/internal/models"
)

// BookStore persists books in a Mongo collection. All listings come back
// sorted by title ascending.
type BookStore struct {
	Collection *mongo.Collection
}

func NewBookStore(coll *mongo.Collection) *BookStore {
	return &BookStore{Collection: coll}
}

var titleSort = options.Find().SetSort(bson.D{{Key: "title", Value: 1}})

func (s *BookStore) Insert(ctx context.Context, book models.Book) error {
	_, err := s.Collection.InsertOne(ctx, book)
	return err
}

func (s *BookStore) FindByID(ctx context.Context, id string) (models.Book, error) {
	var book models.Book
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, catalog.ErrNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return book, nil
}

func (s *BookStore) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{})
}

func (s *BookStore) FindAllByTitle(ctx context.Context, title string) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{"title": title})
}

func (s *BookStore) FindAllByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{"author": author})
}

func (s *BookStore) FindAllByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{"genre": genre})
}

func (s *BookStore) FindAllByAvailability(ctx context.Context, isAvailable bool) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{"is_available": isAvailable})
}

func (s *BookStore) FindAllDueBefore(ctx context.Context, asOf time.Time) ([]models.Book, error) {
	return s.findAll(ctx, bson.M{"due_date": bson.M{"$lt": asOf}})
}

func (s *BookStore) findAll(ctx context.Context, filter bson.M) ([]models.Book, error) {
	cursor, err := s.Collection.Find(ctx, filter, titleSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookStore) Replace(ctx context.Context, book models.Book) (models.Book, error) {
	res, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": book.ID}, book)
	if err != nil {
		return models.Book{}, err
	}
	if res.MatchedCount == 0 {
		return models.Book{}, catalog.ErrNotFound
	}
	return book, nil
}

// SetBorrowed flips an available book to borrowed in a single conditional
// update. A book that is absent or already borrowed matches nothing and
// yields ErrNotFound; the caller tells the two cases apart.
func (s *BookStore) SetBorrowed(ctx context.Context, id string, borrowed, due time.Time) (models.Book, error) {
	filter := bson.M{"_id": id, "is_available": true}
	update := bson.M{"$set": bson.M{
		"is_available":  false,
		"borrowed_date": borrowed,
		"due_date":      due,
	}}
	return s.findOneAndUpdate(ctx, filter, update)
}

// SetReturned is the inverse transition: borrowed back to available, both
// dates cleared.
func (s *BookStore) SetReturned(ctx context.Context, id string) (models.Book, error) {
	filter := bson.M{"_id": id, "is_available": false}
	update := bson.M{
		"$set":   bson.M{"is_available": true},
		"$unset": bson.M{"borrowed_date": "", "due_date": ""},
	}
	return s.findOneAndUpdate(ctx, filter, update)
}

func (s *BookStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (models.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book models.Book
	err := s.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Book{}, catalog.ErrNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return book, nil
}
