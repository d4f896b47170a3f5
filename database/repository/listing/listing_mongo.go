package listingRepo

import (
	"context"
	"fmt"
	"time"

	"parcelo/config"
	"parcelo/database"
	"parcelo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listingDoc wraps a Listing with a rank used to keep catalog order:
// seed records carry their seed position, every later insert takes
// minRank-1 so it sorts to the head, matching the prepend semantics of
// the in-memory store.
type listingDoc struct {
	Rank           float64 `bson:"rank"`
	models.Listing `bson:",inline"`
}

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates the Mongo-backed store, ensures indexes, and
// seeds the collection when it is empty.
func NewMongoListingRepo(seed []models.Listing) (*MongoListingRepo, error) {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("listings")
	repo := &MongoListingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	if err := repo.seedIfEmpty(seed); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "rank", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}
	return nil
}

func (r *MongoListingRepo) seedIfEmpty(seed []models.Listing) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	for i, l := range seed {
		docs = append(docs, listingDoc{Rank: float64(i), Listing: l})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}
	return nil
}

func (r *MongoListingRepo) List() ([]models.Listing, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var doc listingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, doc.Listing)
	}
	return listings, nil
}

func (r *MongoListingRepo) GetByID(id int) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc listingDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing with id %d: %w", id, err)
	}
	return &doc.Listing, nil
}

func (r *MongoListingRepo) Insert(l models.Listing) (models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	maxID, err := r.MaxID()
	if err != nil {
		return models.Listing{}, err
	}
	minRank, err := r.minRank(ctx)
	if err != nil {
		return models.Listing{}, err
	}

	l.ID = maxID + 1
	doc := listingDoc{Rank: minRank - 1, Listing: l}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Listing{}, fmt.Errorf("failed to insert listing: %w", err)
	}
	return l, nil
}

func (r *MongoListingRepo) MaxID() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "id", Value: -1}}).
		SetProjection(bson.M{"id": 1})

	var doc struct {
		ID int `bson:"id"`
	}
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to compute max listing id: %w", err)
	}
	return doc.ID, nil
}

func (r *MongoListingRepo) Count() (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return int(n), nil
}

func (r *MongoListingRepo) minRank(ctx context.Context) (float64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "rank", Value: 1}}).
		SetProjection(bson.M{"rank": 1})

	var doc struct {
		Rank float64 `bson:"rank"`
	}
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to compute min listing rank: %w", err)
	}
	return doc.Rank, nil
}
