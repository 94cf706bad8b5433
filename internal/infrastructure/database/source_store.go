package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
)

type SourceStore struct {
	db *Database
}

func NewSourceStore(db *Database) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(SourceCollection)
}

func (s *SourceStore) Create(ctx context.Context, source *model.Source) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection().InsertOne(ctx, source)

	return err
}

func (s *SourceStore) GetByID(ctx context.Context, id string) (*model.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var source model.Source
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&source)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}

		return nil, err
	}

	return &source, nil
}

func (s *SourceStore) MarkCompleted(ctx context.Context, id, status, blobHash string,
	duplicate bool, completedAt time.Time,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":       status,
			"blob_hash":    blobHash,
			"duplicate":    duplicate,
			"completed_at": completedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entity.ErrNotFound
	}

	return nil
}
