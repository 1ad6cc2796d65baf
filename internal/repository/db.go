package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is a thin adapter over a MongoDB database, exposing the three
// document operations the handlers rely on: insert one, find one by
// equality filter, and run an aggregation pipeline.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a MongoDB client for the given URI and returns a Store
// bound to the named database.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name returns the bound database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping verifies the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// InsertOne appends a document to the named collection.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

// FindOne decodes the first document matching the equality filter into
// out. Returns mongo.ErrNoDocuments when nothing matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	return s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
}

// Aggregate runs a pipeline over the named collection and decodes all
// result documents into out, which must be a pointer to a slice.
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, out any) error {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// CollectionNames lists collection names in the bound database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
