package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

const jobsCollection = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Budget      float64            `bson:"budget"`
	ClientID    string             `bson:"client_id"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (mj *mongoJob) toDomain() domain.Job {
	return domain.Job{
		ID:          mj.ID.Hex(),
		Title:       mj.Title,
		Description: mj.Description,
		Budget:      mj.Budget,
		ClientID:    mj.ClientID,
		CreatedAt:   mj.CreatedAt,
	}
}

func (r *JobRepository) Insert(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	doc := mongoJob{
		Title:       job.Title,
		Description: job.Description,
		Budget:      job.Budget,
		ClientID:    job.ClientID,
		CreatedAt:   job.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	j := mj.toDomain()
	return &j, nil
}

// List returns jobs matching filter, newest first. Absent filter fields add
// no constraint.
func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return r.find(ctx, buildJobFilter(filter))
}

func (r *JobRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Job, error) {
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]domain.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]domain.Job, 0)
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	return jobs, cur.Err()
}

// buildJobFilter translates the search constraints into a Mongo query. Title
// becomes a case-insensitive substring match; the budget bounds are
// inclusive.
func buildJobFilter(f ports.JobFilter) bson.M {
	filter := bson.M{}
	if f.Title != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(f.Title), "$options": "i"}
	}
	budget := bson.M{}
	if f.MinBudget != nil {
		budget["$gte"] = *f.MinBudget
	}
	if f.MaxBudget != nil {
		budget["$lte"] = *f.MaxBudget
	}
	if len(budget) > 0 {
		filter["budget"] = budget
	}
	return filter
}

// EnsureIndexes creates the indexes backing owner listings and sorting.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
