package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

const paymentsCollection = "payments"

// PaymentRepository implements ports.PaymentRepository using MongoDB.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type mongoPayment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OrderID      string             `bson:"order_id"`
	PaymentID    string             `bson:"payment_id"`
	ClientID     string             `bson:"client_id,omitempty"`
	FreelancerID string             `bson:"freelancer_id,omitempty"`
	JobID        string             `bson:"job_id,omitempty"`
	Amount       float64            `bson:"amount,omitempty"`
	Status       string             `bson:"status"`
	Date         time.Time          `bson:"date"`
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	doc := mongoPayment{
		OrderID:      p.OrderID,
		PaymentID:    p.PaymentID,
		ClientID:     p.ClientID,
		FreelancerID: p.FreelancerID,
		JobID:        p.JobID,
		Amount:       p.Amount,
		Status:       string(p.Status),
		Date:         p.Date,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// EnsureIndexes creates the order lookup index on the payments collection.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order_id", Value: 1}},
	})
	return err
}
