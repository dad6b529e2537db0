package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

const contactsCollection = "contacts"

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository on db.contacts.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(contactsCollection)}
}

// Ensure MongoContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*MongoContactRepository)(nil)

// EnsureIndexes creates the unique id index and the listing index.
func (r *MongoContactRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", contactsCollection, err)
	}
	return nil
}

func (r *MongoContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List sorts on created_at and falls back to _id, whose ObjectID prefix is
// monotonic, so messages inserted within the same millisecond keep their
// insertion order.
func (r *MongoContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(opts.Skip)).
		SetLimit(int64(opts.Limit))

	cur, err := r.coll.Find(ctx, bson.D{}, find)
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	defer cur.Close(ctx)

	var messages []*model.ContactMessage
	if err := cur.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}
	return messages, nil
}

func (r *MongoContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find contact message %s: %w", id, err)
	}
	return &m, nil
}

// UpdateStatus matches on id only, so re-applying the current status still
// counts as found.
func (r *MongoContactRepository) UpdateStatus(ctx context.Context, id string, status model.MessageStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: string(status)}}}},
	)
	if err != nil {
		return fmt.Errorf("update contact message %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
