package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID      int      `bson:"id" json:"id"`
	Text    string   `bson:"text" json:"text"`
	Options []string `bson:"options" json:"options"`
	Answer  string   `bson:"answer" json:"answer"`
	Points  float64  `bson:"points" json:"points"`
}

type Quiz struct {
	MongoID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID            int64              `bson:"id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Subject       string             `bson:"subject" json:"subject"`
	Branch        string             `bson:"branch" json:"branch"`
	AcademicYear  string             `bson:"academicYear" json:"academicYear"`
	Questions     []Question         `bson:"questions" json:"questions"`
	Duration      int                `bson:"duration" json:"duration"`
	CreatedBy     string             `bson:"createdBy" json:"createdBy"`
	ShareableLink string             `bson:"shareableLink" json:"shareableLink"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	StartTime     string             `bson:"startTime" json:"startTime"`
	EndTime       string             `bson:"endTime" json:"endTime"`
}

// TotalPoints is the maximum achievable score across all questions.
func (q *Quiz) TotalPoints() float64 {
	var total float64
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// Expired reports whether the quiz window has passed at the given instant.
func (q *Quiz) Expired(now time.Time) bool {
	return now.After(q.CreatedAt.Add(time.Duration(q.Duration) * time.Minute))
}
