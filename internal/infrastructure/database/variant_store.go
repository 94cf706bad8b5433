package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"framecast/internal/domain/model"
)

type VariantStore struct {
	db *Database
}

func NewVariantStore(db *Database) *VariantStore {
	return &VariantStore{db: db}
}

func (s *VariantStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(VariantCollection)
}

// Upsert replaces any prior variant of the same (device, blob, layout) key.
// Re-running fan-out is an idempotent overwrite, never a second row.
func (s *VariantStore) Upsert(ctx context.Context, variant *model.DeviceVariant) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	filter := bson.M{
		"device_id": variant.DeviceID,
		"blob_hash": variant.BlobHash,
		"layout":    variant.Layout,
	}

	_, err := s.collection().ReplaceOne(ctx, filter, variant, options.Replace().SetUpsert(true))

	return err
}

func (s *VariantStore) ListByBlob(ctx context.Context, blobHash string) ([]model.DeviceVariant, error) {
	return s.list(ctx, bson.M{"blob_hash": blobHash})
}

func (s *VariantStore) List(ctx context.Context) ([]model.DeviceVariant, error) {
	return s.list(ctx, bson.M{})
}

func (s *VariantStore) list(ctx context.Context, filter bson.M) ([]model.DeviceVariant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var variants []model.DeviceVariant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, err
	}

	return variants, nil
}

func (s *VariantStore) DeleteByBlob(ctx context.Context, blobHash string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteMany(ctx, bson.M{"blob_hash": blobHash})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (s *VariantStore) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
