package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlobCollection    = "blobs"
	SessionCollection = "sessions"
	SourceCollection  = "sources"
	VariantCollection = "variants"
)

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"`
}

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initCollections(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initCollections(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	existing, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	if !have[BlobCollection] {
		if err := createBlobCollection(ctx, db); err != nil {
			return err
		}
	}
	if !have[SessionCollection] {
		if err := createSessionCollection(ctx, db); err != nil {
			return err
		}
	}
	if !have[SourceCollection] {
		if err := db.Client.Database(db.DBName).CreateCollection(ctx, SourceCollection); err != nil {
			return err
		}
	}
	if !have[VariantCollection] {
		if err := createVariantCollection(ctx, db); err != nil {
			return err
		}
	}

	return nil
}

func createBlobCollection(ctx context.Context, db *Database) error {
	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "bucket", "storage_path", "mime_type"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"minLength":   64,
					"maxLength":   64,
					"description": "must be 64-character SHA hash",
				},
				"bucket":       bson.M{"bsonType": "string"},
				"storage_path": bson.M{"bsonType": "string"},
				"mime_type":    bson.M{"bsonType": "string"},
				"width":        bson.M{"bsonType": "int"},
				"height":       bson.M{"bsonType": "int"},
				"aspect_ratio": bson.M{"bsonType": "double"},
				"orientation": bson.M{
					"enum": []string{"portrait", "landscape", "square"},
				},
				"size": bson.M{"bsonType": "long"},
			},
		},
	})

	return db.Client.Database(db.DBName).CreateCollection(ctx, BlobCollection, collOpts)
}

func createSessionCollection(ctx context.Context, db *Database) error {
	if err := db.Client.Database(db.DBName).CreateCollection(ctx, SessionCollection); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(SessionCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "expire_time", Value: 1}},
	})

	return err
}

func createVariantCollection(ctx context.Context, db *Database) error {
	if err := db.Client.Database(db.DBName).CreateCollection(ctx, VariantCollection); err != nil {
		return err
	}

	// One authoritative variant per (device, blob, layout).
	coll := db.Client.Database(db.DBName).Collection(VariantCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "device_id", Value: 1},
			{Key: "blob_hash", Value: 1},
			{Key: "layout", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func (db *Database) Stop() error {
	return db.Client.Disconnect(context.Background())
}
