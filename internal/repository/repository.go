package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Store bundles the repositories of one backend with its connection.
type Store struct {
	Contacts  ContactRepository
	Portfolio PortfolioRepository
	DB        DB

	closeFn func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// OpenMongo connects to MongoDB, verifies the connection and ensures the
// collection indexes exist.
func OpenMongo(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := NewMongoClient(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	db := client.Database(dbName)
	contacts := NewMongoContactRepository(db)
	portfolio := NewMongoPortfolioRepository(db)

	if err := contacts.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if err := portfolio.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Contacts:  contacts,
		Portfolio: portfolio,
		DB:        &mongoPinger{client: client},
		closeFn:   client.Disconnect,
	}, nil
}

// OpenPostgres connects to PostgreSQL and creates the tables when missing.
func OpenPostgres(ctx context.Context, connString string) (*Store, error) {
	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := EnsurePgSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{
		Contacts:  NewPgContactRepository(pool),
		Portfolio: NewPgPortfolioRepository(pool),
		DB:        pool,
		closeFn: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var (
	_ DB = (*pgxpool.Pool)(nil)
	_ DB = (*mongoPinger)(nil)
)

// mongoPinger adapts *mongo.Client to DB.
type mongoPinger struct {
	client *mongo.Client
}
