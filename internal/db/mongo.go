package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	DB           *mongo.Database
	CompanyLogos *mongo.Collection
	Users        *mongo.Collection
	Counters     *mongo.Collection
}

func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		DB:           db,
		CompanyLogos: db.Collection("company_logos"),
		Users:        db.Collection("users"),
		Counters:     db.Collection("counters"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.CompanyLogos.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "display_order", Value: 1}, {Key: "_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// NextSequence atomically increments and returns the named counter. Values
// are never handed out twice, even after the documents using them are gone.
func NextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).Decode(&out)
	if err != nil {
		return 0, err
	}
	return out.Seq, nil
}

func MongoCollections(ctx context.Context, cols *Collections) ([]string, error) {
	return cols.DB.ListCollectionNames(ctx, bson.D{})
}

func MongoVersion(ctx context.Context, cols *Collections) (string, error) {
	var info struct {
		Version string `bson:"version"`
	}
	if err := cols.DB.RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}}).Decode(&info); err != nil {
		return "", err
	}
	return "MongoDB " + info.Version, nil
}
