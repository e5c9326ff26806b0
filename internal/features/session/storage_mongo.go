package session

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storageCollection = "session_store"

type storageItem struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStorage keeps items in a MongoDB collection keyed by _id.
type MongoStorage struct {
	collection *mongo.Collection
}

func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{collection: db.Collection(storageCollection)}
}

func (m *MongoStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item storageItem
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return item.Value, true, nil
}

func (m *MongoStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := m.collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *MongoStorage) RemoveItem(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
