package submission

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"QuickTech-Backend/src/models"
)

const submissionCounterKey = "submissions"

// MongoStore persists submissions in a collection and draws integer ids from a
// counters collection with an atomic $inc.
type MongoStore struct {
	submissions *mongo.Collection
	counters    *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		submissions: db.Collection("submissions"),
		counters:    db.Collection("counters"),
	}
}

func (m *MongoStore) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": submissionCounterKey},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next submission id: %w", err)
	}
	return counter.Seq, nil
}

func (m *MongoStore) Create(ctx context.Context, in models.NewSubmission) (models.Submission, error) {
	id, err := m.nextID(ctx)
	if err != nil {
		return models.Submission{}, err
	}

	sub := models.Submission{
		ID:          id,
		Type:        in.Type,
		Data:        in.Data,
		CreatedAt:   in.CreatedAt,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Viewed:      false,
	}
	if sub.Data == nil {
		sub.Data = map[string]any{}
	}

	if _, err := m.submissions.InsertOne(ctx, sub); err != nil {
		return models.Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

func (m *MongoStore) List(ctx context.Context) ([]models.Submission, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.submissions.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoStore) GetByID(ctx context.Context, id int64) (models.Submission, error) {
	var sub models.Submission
	err := m.submissions.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Submission{}, ErrNotFound
		}
		return models.Submission{}, err
	}
	return sub, nil
}

func (m *MongoStore) MarkViewed(ctx context.Context, id int64) error {
	res, err := m.submissions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"viewed": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
