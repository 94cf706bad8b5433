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

type SessionStore struct {
	db *Database
}

func NewSessionStore(db *Database) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) collection() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(SessionCollection)
}

func (s *SessionStore) Create(ctx context.Context, session *model.PickerSession) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection().InsertOne(ctx, session)

	return err
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (*model.PickerSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var session model.PickerSession
	err := s.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}

		return nil, err
	}

	return &session, nil
}

func (s *SessionStore) UpdatePollState(ctx context.Context, id string, mediaItemsSet bool,
	pollIntervalMillis, pollTimeoutMillis int64,
) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"media_items_set":  mediaItemsSet,
			"poll_interval_ms": pollIntervalMillis,
			"poll_timeout_ms":  pollTimeoutMillis,
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

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	_, err := s.collection().DeleteOne(ctx, bson.M{"_id": id})

	return err
}

func (s *SessionStore) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	res, err := s.collection().DeleteMany(ctx, bson.M{"expire_time": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
