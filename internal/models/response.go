package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudentData is a snapshot of the student's identity at submission time.
// It is copied into the response so later profile edits do not rewrite
// historical results.
type StudentData struct {
	ID           int    `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Branch       string `bson:"branch" json:"branch"`
	Section      string `bson:"section" json:"section"`
	RollNo       int    `bson:"rollNo" json:"rollNo"`
	RegNo        int    `bson:"regNo" json:"regNo"`
	AcademicYear int    `bson:"academicYear" json:"academicYear"`
}

// Answer records the outcome for a single question. SelectedAnswer is nil
// when the question was left unanswered.
type Answer struct {
	QueID          int     `bson:"queId" json:"queId"`
	SelectedAnswer *string `bson:"selectedAnswer" json:"selectedAnswer"`
	IsCorrect      bool    `bson:"isCorrect" json:"isCorrect"`
}

type QuizResponse struct {
	MongoID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID           string             `bson:"id" json:"id"`
	QuizID       int64              `bson:"quizId" json:"quizId"`
	QuizMongoID  string             `bson:"quizMongoId,omitempty" json:"quizMongoId,omitempty"`
	StudentID    int                `bson:"studentId" json:"studentId"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail"`
	Subject      string             `bson:"subject" json:"subject"`
	StudentData  StudentData        `bson:"studentData" json:"studentData"`
	Answers      []Answer           `bson:"answers" json:"answers"`
	TotalScore   float64            `bson:"totalScore" json:"totalScore"`
	Violations   int                `bson:"violations" json:"violations"`
	StartTime    time.Time          `bson:"startTime" json:"startTime"`
	EndTime      time.Time          `bson:"endTime" json:"endTime"`
}
