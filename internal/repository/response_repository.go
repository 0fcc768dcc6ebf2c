package repository

import (
	"context"

	"quiz-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseRepository struct {
	Col *mongo.Collection
}

func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{Col: db.Collection("responses")}
}

func (r *ResponseRepository) Create(ctx context.Context, resp *models.QuizResponse) error {
	_, err := r.Col.InsertOne(ctx, resp)
	return err
}

// Find returns responses ordered by total score descending. An empty
// subject returns every response.
func (r *ResponseRepository) Find(ctx context.Context, subject string) ([]models.QuizResponse, error) {
	filter := bson.M{}
	if subject != "" {
		filter["subject"] = subject
	}
	opts := options.Find().SetSort(bson.D{{Key: "totalScore", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var responses []models.QuizResponse
	for cur.Next(ctx) {
		var resp models.QuizResponse
		if err := cur.Decode(&resp); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, cur.Err()
}

func (r *ResponseRepository) DistinctSubjects(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "subject", bson.M{})
	if err != nil {
		return nil, err
	}
	subjects := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			subjects = append(subjects, s)
		}
	}
	return subjects, nil
}
