package logos

import (
	"context"
	"errors"

	"repaired-site/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const logoSequence = "company_logos"

type MongoRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMongoRepository(cols *db.Collections) *MongoRepository {
	return &MongoRepository{col: cols.CompanyLogos, counters: cols.Counters}
}

func (r *MongoRepository) List(ctx context.Context) ([]Logo, error) {
	items, err := r.find(ctx, bson.M{})
	return items, persistence("list", err)
}

func (r *MongoRepository) ListActive(ctx context.Context) ([]Logo, error) {
	items, err := r.find(ctx, bson.M{"is_active": true})
	return items, persistence("list active", err)
}

func (r *MongoRepository) Get(ctx context.Context, id int64) (Logo, bool, error) {
	var l Logo
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Logo{}, false, nil
		}
		return Logo{}, false, persistence("get", err)
	}
	return l, true, nil
}

func (r *MongoRepository) Create(ctx context.Context, item Logo) (Logo, error) {
	id, err := db.NextSequence(ctx, r.counters, logoSequence)
	if err != nil {
		return Logo{}, persistence("create", err)
	}
	item.ID = id
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return Logo{}, persistence("create", err)
	}
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, id int64, patch Patch) (Logo, bool, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Logo
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, mongoUpdate(patch), opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Logo{}, false, nil
		}
		return Logo{}, false, persistence("update", err)
	}
	return updated, true, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, persistence("delete", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository) find(ctx context.Context, query bson.M) ([]Logo, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "display_order", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Logo, 0)
	for cursor.Next(ctx) {
		var l Logo
		if err := cursor.Decode(&l); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// mongoUpdate translates a patch into $set/$unset operators.
func mongoUpdate(p Patch) bson.M {
	set := bson.M{}
	unset := bson.M{}

	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.ImageURL != nil {
		set["image_url"] = *p.ImageURL
	}
	if p.ClearDarkModeURL {
		unset["dark_mode_url"] = ""
	} else if p.DarkModeURL != nil {
		set["dark_mode_url"] = *p.DarkModeURL
	}
	if p.ClearAltText {
		unset["alt_text"] = ""
	} else if p.AltText != nil {
		set["alt_text"] = *p.AltText
	}
	if p.DisplayOrder != nil {
		set["display_order"] = *p.DisplayOrder
	}
	if p.IsActive != nil {
		set["is_active"] = *p.IsActive
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}
