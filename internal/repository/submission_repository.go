package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nird-intake/internal/domain"
	"nird-intake/pkg/database"
)

const submissionCollection = "submissions"

// submissionRepository persists submissions in the document store
type submissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *database.MongoDB) SubmissionRepository {
	return &submissionRepository{
		collection: db.Collection(submissionCollection),
	}
}

// Create inserts a submission and fills in its generated id
func (r *submissionRepository) Create(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	result, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	sub.ID = oid

	return sub, nil
}

// FindAll returns all submissions, newest first
func (r *submissionRepository) FindAll(ctx context.Context) ([]domain.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer cursor.Close(ctx)

	submissions := make([]domain.Submission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}

	return submissions, nil
}

// FindByID returns one submission or domain.ErrSubmissionNotFound
func (r *submissionRepository) FindByID(ctx context.Context, id string) (*domain.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored document
		return nil, domain.ErrSubmissionNotFound
	}

	var sub domain.Submission
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission %s: %w", id, err)
	}

	return &sub, nil
}

// Update applies the non-nil fields of req and returns the updated record
func (r *submissionRepository) Update(ctx context.Context, id string, req *domain.UpdateRequest) (*domain.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	set := bson.M{}
	if req.MissionType != nil {
		set["mission_type"] = *req.MissionType
	}
	if req.FirstName != nil {
		set["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		set["last_name"] = *req.LastName
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Message != nil {
		set["message"] = *req.Message
	}
	if req.SchoolName != nil {
		set["school_name"] = *req.SchoolName
	}
	if req.StudentCount != nil {
		set["student_count"] = *req.StudentCount
	}

	if len(set) == 0 {
		// Nothing to change, behave like a read
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var sub domain.Submission
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to update submission %s: %w", id, err)
	}

	return &sub, nil
}

// Delete removes a submission or returns domain.ErrSubmissionNotFound
func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubmissionNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrSubmissionNotFound
	}

	return nil
}
