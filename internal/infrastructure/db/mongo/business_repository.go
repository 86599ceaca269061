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

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

const businessesCollection = "businesses"

type BusinessRepository struct {
	coll *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{coll: db.Collection(businessesCollection)}
}

type mongoBusiness struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserID             string             `bson:"user_id"`
	CompanyName        string             `bson:"company_name"`
	Website            string             `bson:"website,omitempty"`
	Industry           string             `bson:"industry,omitempty"`
	About              string             `bson:"about,omitempty"`
	Plan               string             `bson:"plan"`
	SubscriptionStatus string             `bson:"subscription_status,omitempty"`
	StripeCustomerID   string             `bson:"stripe_customer_id,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

func (m mongoBusiness) toDomain() *domain.BusinessProfile {
	return &domain.BusinessProfile{
		ID:                 m.ID.Hex(),
		UserID:             m.UserID,
		CompanyName:        m.CompanyName,
		Website:            m.Website,
		Industry:           m.Industry,
		About:              m.About,
		Plan:               m.Plan,
		SubscriptionStatus: m.SubscriptionStatus,
		StripeCustomerID:   m.StripeCustomerID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, profile *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBusiness{
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		Website:     profile.Website,
		Industry:    profile.Industry,
		About:       profile.About,
		Plan:        profile.Plan,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}

	created := *profile
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBusinessNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BusinessRepository) FindByUserID(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *BusinessRepository) FindByStripeCustomer(ctx context.Context, customerID string) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"stripe_customer_id": customerID})
}

func (r *BusinessRepository) findOne(ctx context.Context, filter bson.M) (*domain.BusinessProfile, error) {
	var m mongoBusiness
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return m.toDomain(), nil
}

func (r *BusinessRepository) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(profile.ID)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	update := bson.M{"$set": bson.M{
		"company_name": profile.CompanyName,
		"website":      profile.Website,
		"industry":     profile.Industry,
		"about":        profile.About,
		"updated_at":   profile.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) SetStripeCustomer(ctx context.Context, id, customerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"stripe_customer_id": customerID,
	}})
	if err != nil {
		return fmt.Errorf("set stripe customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) SetPlan(ctx context.Context, id, plan, subscriptionStatus string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"plan":                plan,
		"subscription_status": subscriptionStatus,
		"updated_at":          time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("set plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes for business profiles.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stripe_customer_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
