// Package services - fake in-memory cho BaseServiceMongo, dùng chung cho các
// test service mà không cần MongoDB thật. Filter chỉ hỗ trợ so khớp bằng
// từng field (đủ cho mọi filter các service đang dùng).
package services

import (
	"context"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ark_deals/core/common"
)

type memBase[T any] struct {
	docs []bson.M
}

func newMemBase[T any]() *memBase[T] {
	return &memBase[T]{}
}

// seed thêm thẳng một document dạng bson.M, cho phép dựng document THIẾU
// field (giống dữ liệu cũ trong collection thật) - điều InsertOne không làm được.
func (m *memBase[T]) seed(doc bson.M) primitive.ObjectID {
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, doc)
	return doc["_id"].(primitive.ObjectID)
}

func (m *memBase[T]) decode(doc bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, err
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (m *memBase[T]) encode(model T) (bson.M, error) {
	raw, err := bson.Marshal(model)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func matches(doc bson.M, filter interface{}) bool {
	if filter == nil {
		return true
	}
	f, ok := filter.(bson.M)
	if !ok {
		return false
	}
	for k, want := range f {
		got, exists := doc[k]
		if !exists {
			return want == nil
		}
		if oid, ok := want.(primitive.ObjectID); ok {
			gotOID, ok := got.(primitive.ObjectID)
			if !ok || gotOID != oid {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func applyUpdate(doc bson.M, update interface{}) {
	u, ok := update.(bson.M)
	if !ok {
		return
	}
	if set, ok := u["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = v
		}
	}
	if unset, ok := u["$unset"].(bson.M); ok {
		for k := range unset {
			delete(doc, k)
		}
	}
}

func (m *memBase[T]) InsertOne(ctx context.Context, data T) (T, error) {
	doc, err := m.encode(data)
	if err != nil {
		return data, err
	}
	if id, ok := doc["_id"].(primitive.ObjectID); !ok || id.IsZero() {
		doc["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, doc)
	return m.decode(doc)
}

func (m *memBase[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	out := make([]T, 0, len(data))
	for _, d := range data {
		inserted, err := m.InsertOne(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, inserted)
	}
	return out, nil
}

func (m *memBase[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	for _, doc := range m.docs {
		if matches(doc, filter) {
			return m.decode(doc)
		}
	}
	return zero, common.ErrNotFound
}

func (m *memBase[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	out := make([]T, 0)
	for _, doc := range m.docs {
		if matches(doc, filter) {
			decoded, err := m.decode(doc)
			if err != nil {
				return nil, err
			}
			out = append(out, decoded)
		}
	}
	return out, nil
}

func (m *memBase[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T
	for _, doc := range m.docs {
		if matches(doc, filter) {
			applyUpdate(doc, update)
			return m.decode(doc)
		}
	}
	return zero, common.ErrNotFound
}

func (m *memBase[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	var n int64
	for _, doc := range m.docs {
		if matches(doc, filter) {
			applyUpdate(doc, update)
			n++
		}
	}
	return n, nil
}

func (m *memBase[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	for i, doc := range m.docs {
		if matches(doc, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *memBase[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	var kept []bson.M
	var n int64
	for _, doc := range m.docs {
		if matches(doc, filter) {
			n++
			continue
		}
		kept = append(kept, doc)
	}
	m.docs = kept
	return n, nil
}

func (m *memBase[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	var n int64
	for _, doc := range m.docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (m *memBase[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return m.FindOne(ctx, bson.M{"_id": id}, nil)
}

func (m *memBase[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	return m.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

func (m *memBase[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return m.DeleteOne(ctx, bson.M{"_id": id})
}

func (m *memBase[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	n, err := m.CountDocuments(ctx, filter)
	return n > 0, err
}
