package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const applicationsCollection = "applications"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
// The unique (job_id, freelancer_id) index makes Insert an atomic
// insert-if-absent, so a race between identical applications yields exactly
// one success.
type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	JobID        string             `bson:"job_id"`
	FreelancerID string             `bson:"freelancer_id"`
	CoverLetter  string             `bson:"cover_letter"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (ma *mongoApplication) toDomain() domain.Application {
	return domain.Application{
		ID:           ma.ID.Hex(),
		JobID:        ma.JobID,
		FreelancerID: ma.FreelancerID,
		CoverLetter:  ma.CoverLetter,
		Status:       domain.ApplicationStatus(ma.Status),
		CreatedAt:    ma.CreatedAt,
	}
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := mongoApplication{
		JobID:        app.JobID,
		FreelancerID: app.FreelancerID,
		CoverLetter:  app.CoverLetter,
		Status:       string(app.Status),
		CreatedAt:    app.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	app := ma.toDomain()
	return &app, nil
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.find(ctx, bson.M{"job_id": jobID})
}

func (r *ApplicationRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]domain.Application, error) {
	return r.find(ctx, bson.M{"freelancer_id": freelancerID})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]domain.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]domain.Application, 0)
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, ma.toDomain())
	}
	return apps, cur.Err()
}

// UpdateStatus sets the review state and returns the updated record.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": string(status)}}

	var ma mongoApplication
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	app := ma.toDomain()
	return &app, nil
}

// EnsureIndexes creates the unique (job_id, freelancer_id) index backing the
// one-application-per-job rule.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "freelancer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
