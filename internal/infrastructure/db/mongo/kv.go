package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionKV = "kv"

// kvDocument stores one snapshot per key: {_id: <key>, value: <blob>}.
type kvDocument struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// KV adapts a MongoDB collection to the snapshot key-value port. Each
// directory collection lives in a single document keyed by its namespaced
// name, so a snapshot write stays one atomic replace.
type KV struct {
	col *mongo.Collection
}

// NewKV binds the key-value adapter to the kv collection of db.
func NewKV(db *mongo.Database) *KV {
	return &KV{col: db.Collection(collectionKV)}
}

// Get returns the snapshot stored under key, or (nil, nil) when the key has
// never been written.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	err := k.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo get %s: %w", key, err)
	}
	return doc.Value, nil
}

// Set overwrites the snapshot stored under key (upsert).
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := k.col.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}
