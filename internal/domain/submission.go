package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission represents one persisted form intake
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MissionType  MissionType        `bson:"mission_type" json:"mission_type"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message      string             `bson:"message,omitempty" json:"message,omitempty"`
	SchoolName   string             `bson:"school_name,omitempty" json:"school_name,omitempty"`
	StudentCount *int               `bson:"student_count,omitempty" json:"student_count,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// SubmissionRequest represents the create payload as posted by the form
type SubmissionRequest struct {
	MissionType  MissionType `json:"mission_type"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Message      string      `json:"message,omitempty"`
	SchoolName   string      `json:"school_name,omitempty"`
	StudentCount *int        `json:"student_count,omitempty"`
}

// UpdateRequest represents a partial update; nil fields are left untouched
type UpdateRequest struct {
	MissionType  *MissionType `json:"mission_type,omitempty"`
	FirstName    *string      `json:"first_name,omitempty"`
	LastName     *string      `json:"last_name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Message      *string      `json:"message,omitempty"`
	SchoolName   *string      `json:"school_name,omitempty"`
	StudentCount *int         `json:"student_count,omitempty"`
}
