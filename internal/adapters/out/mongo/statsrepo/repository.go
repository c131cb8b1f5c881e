package statsrepo

import (
	"context"
	"fmt"
	"time"

	"catering/internal/core/domain/model/stats"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStatsRepository implements StatsStore on a MongoDB collection.
type MongoStatsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoStatsRepository(db *mongo.Database) *MongoStatsRepository {
	return &MongoStatsRepository{
		collection: db.Collection(CollectionName),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// EnsureIndexes creates the unique (menuId, day) index the upsert relies on.
// It is idempotent.
func (r *MongoStatsRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "menuId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("menu_day_unique"),
		},
		{
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetName("day"),
		},
	})
	return err
}

// Increment adds one order to the rollup of (menu, day), creating it with a
// count of 1 on first use. Two upserts racing on a missing document can both
// try the insert; the loser gets a duplicate key error and is replayed once
// as a plain update.
func (r *MongoStatsRepository) Increment(ctx context.Context, inc stats.Increment) error {
	revenue, err := primitive.ParseDecimal128(inc.Revenue.String())
	if err != nil {
		return fmt.Errorf("convert revenue %s: %w", inc.Revenue, err)
	}

	now := r.now()
	filter := bson.D{
		{Key: "menuId", Value: inc.MenuID.String()},
		{Key: "day", Value: inc.DayStart.UTC()},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{
			{Key: "orderCount", Value: int64(1)},
			{Key: "revenue", Value: revenue},
		}},
		{Key: "$set", Value: bson.D{
			{Key: "menuTitle", Value: inc.MenuTitle},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "createdAt", Value: now},
		}},
	}

	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.collection.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return fmt.Errorf("increment rollup %s/%s: %w", inc.MenuID, inc.DayStart.Format(time.DateOnly), err)
	}
	return nil
}

// List returns the rollups with a day in [from, to), by day then title.
func (r *MongoStatsRepository) List(ctx context.Context, from, to time.Time) ([]stats.Rollup, error) {
	filter := bson.D{{Key: "day", Value: bson.D{
		{Key: "$gte", Value: from.UTC()},
		{Key: "$lt", Value: to.UTC()},
	}}}
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "menuTitle", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []RollupDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rollups := make([]stats.Rollup, 0, len(docs))
	for _, doc := range docs {
		rollup, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		rollups = append(rollups, rollup)
	}
	return rollups, nil
}
