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

type BlobStore struct {
	db *Database
}

func NewBlobStore(db *Database) *BlobStore {
	return &BlobStore{db: db}
}

func (s *BlobStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(BlobCollection)
}

func (s *BlobStore) GetByHash(ctx context.Context, hash string) (*model.Blob, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var blob model.Blob
	err := s.collection().FindOne(ctx, bson.M{"_id": hash}).Decode(&blob)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}

		return nil, err
	}

	return &blob, nil
}

// CreateIfAbsent relies on the _id uniqueness of the content hash: a
// concurrent or repeated insert of the same hash surfaces as a duplicate-key
// error, which is mapped onto the ErrDuplicateContent control-flow signal.
func (s *BlobStore) CreateIfAbsent(ctx context.Context, blob *model.Blob) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection().InsertOne(ctx, blob)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateContent
		}

		return err
	}

	return nil
}

func (s *BlobStore) AttachAnalysis(ctx context.Context, hash, title, description string,
	analysis *model.Analysis, analyzedAt time.Time,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	// $set touches only the enrichment fields; geometry and format stay as
	// the processing worker reported them.
	res, err := s.collection().UpdateOne(ctx, bson.M{"_id": hash}, bson.M{
		"$set": bson.M{
			"title":       title,
			"description": description,
			"analysis":    analysis,
			"analyzed_at": analyzedAt,
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

func (s *BlobStore) List(ctx context.Context) ([]model.Blob, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var blobs []model.Blob
	if err := cursor.All(ctx, &blobs); err != nil {
		return nil, err
	}

	return blobs, nil
}

func (s *BlobStore) Delete(ctx context.Context, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteOne(ctx, bson.M{"_id": hash})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (s *BlobStore) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
