package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an id has no matching record.
var ErrNotFound = errors.New("record not found")

const (
	colGalleryItems          = "galleryItems"
	colRecentUpdates         = "recentUpdates"
	colUpcomingEvents        = "upcomingEvents"
	colDonationTransactions  = "donationTransactions"
	colDonationCases         = "donationCases"
	colDonationContent       = "donationContent"
	colContactMessages       = "contactMessages"
	colNewsletterSubscribers = "newsletterSubscribers"
	colNewsletterCampaigns   = "newsletterCampaigns"
)

// Store is the single document-store handle for the process. It is
// built once in main and injected into handlers. Every operation is a
// targeted per-document call; the only cross-document writes are the
// priority-flag maintenance ones, which are serialized per collection
// through the locks map.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	locks map[string]*sync.Mutex
}

// Connect establishes the Mongo connection, verifies it and seeds empty
// collections with starter content.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(dbName),
		locks: map[string]*sync.Mutex{
			colGalleryItems:   {},
			colUpcomingEvents: {},
		},
	}

	if err := s.ensureSeedData(ctx); err != nil {
		return nil, fmt.Errorf("seed data: %w", err)
	}

	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// collectionLock serializes priority-flag writes within one collection.
func (s *Store) collectionLock(name string) *sync.Mutex {
	return s.locks[name]
}

// listAll decodes every document in a collection, newest first.
func (s *Store) listAll(ctx context.Context, name string, out interface{}) error {
	cursor, err := s.collection(name).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *Store) findByID(ctx context.Context, name, id string, out interface{}) error {
	err := s.collection(name).FindOne(ctx, bson.M{"id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *Store) insertOne(ctx context.Context, name string, doc interface{}) error {
	_, err := s.collection(name).InsertOne(ctx, doc)
	return err
}

func (s *Store) replaceByID(ctx context.Context, name, id string, doc interface{}) error {
	res, err := s.collection(name).ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, name, id string) error {
	res, err := s.collection(name).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// applyPriorityWrite runs the clear-siblings step and the flagged write
// as one unit under the collection lock, so two flagged writes cannot
// interleave and leave more than one record carrying the flag.
func applyPriorityWrite(lock *sync.Mutex, clear, write func() error) error {
	lock.Lock()
	defer lock.Unlock()

	if err := clear(); err != nil {
		return err
	}
	return write()
}

// clearPriorityExcept drops the priority flag on every sibling of
// keepID. Callers must hold the collection lock.
func (s *Store) clearPriorityExcept(ctx context.Context, name, keepID string) error {
	_, err := s.collection(name).UpdateMany(
		ctx,
		bson.M{"id": bson.M{"$ne": keepID}},
		bson.M{"$set": bson.M{"priorityplacement": false}},
	)
	return err
}
