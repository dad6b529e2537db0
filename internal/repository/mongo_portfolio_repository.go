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

const portfolioCollection = "portfolio_config"

// MongoPortfolioRepository is the MongoDB implementation of PortfolioRepository.
type MongoPortfolioRepository struct {
	coll *mongo.Collection
}

// NewMongoPortfolioRepository creates a MongoPortfolioRepository on db.portfolio_config.
func NewMongoPortfolioRepository(db *mongo.Database) *MongoPortfolioRepository {
	return &MongoPortfolioRepository{coll: db.Collection(portfolioCollection)}
}

var _ PortfolioRepository = (*MongoPortfolioRepository)(nil)

// EnsureIndexes makes section the upsert key.
func (r *MongoPortfolioRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "section", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create %s indexes: %w", portfolioCollection, err)
	}
	return nil
}

func (r *MongoPortfolioRepository) FindBySection(ctx context.Context, section model.Section) (*model.PortfolioConfig, error) {
	var cfg model.PortfolioConfig
	err := r.coll.FindOne(ctx, bson.D{{Key: "section", Value: string(section)}}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio section %s: %w", section, err)
	}
	cfg.Data = plainMap(cfg.Data)
	return &cfg, nil
}

func (r *MongoPortfolioRepository) Upsert(ctx context.Context, cfg *model.PortfolioConfig) error {
	filter := bson.D{{Key: "section", Value: string(cfg.Section)}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "data", Value: cfg.Data},
			{Key: "last_updated", Value: cfg.LastUpdated},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "id", Value: cfg.ID},
		}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored model.PortfolioConfig
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return fmt.Errorf("upsert portfolio section %s: %w", cfg.Section, err)
	}
	stored.Data = plainMap(stored.Data)
	*cfg = stored
	return nil
}
