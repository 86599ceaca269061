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
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

const creatorsCollection = "creators"

type CreatorRepository struct {
	coll *mongo.Collection
}

func NewCreatorRepository(db *mongo.Database) *CreatorRepository {
	return &CreatorRepository{coll: db.Collection(creatorsCollection)}
}

type mongoCreator struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	DisplayName  string             `bson:"display_name"`
	Bio          string             `bson:"bio,omitempty"`
	Niches       []string           `bson:"niches,omitempty"`
	PortfolioURL string             `bson:"portfolio_url,omitempty"`
	RatePerVideo float64            `bson:"rate_per_video,omitempty"`
	AvgRating    float64            `bson:"avg_rating"`
	ReviewCount  int                `bson:"review_count"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (m mongoCreator) toDomain() *domain.CreatorProfile {
	return &domain.CreatorProfile{
		ID:           m.ID.Hex(),
		UserID:       m.UserID,
		DisplayName:  m.DisplayName,
		Bio:          m.Bio,
		Niches:       m.Niches,
		PortfolioURL: m.PortfolioURL,
		RatePerVideo: m.RatePerVideo,
		AvgRating:    m.AvgRating,
		ReviewCount:  m.ReviewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *CreatorRepository) Create(ctx context.Context, profile *domain.CreatorProfile) (*domain.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCreator{
		UserID:       profile.UserID,
		DisplayName:  profile.DisplayName,
		Bio:          profile.Bio,
		Niches:       profile.Niches,
		PortfolioURL: profile.PortfolioURL,
		RatePerVideo: profile.RatePerVideo,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert creator: %w", err)
	}

	created := *profile
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CreatorRepository) FindByID(ctx context.Context, id string) (*domain.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCreatorNotFound
	}

	var m mongoCreator
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("find creator: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CreatorRepository) FindByUserID(ctx context.Context, userID string) (*domain.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoCreator
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, fmt.Errorf("find creator by user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *CreatorRepository) Update(ctx context.Context, profile *domain.CreatorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(profile.ID)
	if err != nil {
		return domain.ErrCreatorNotFound
	}

	update := bson.M{"$set": bson.M{
		"display_name":   profile.DisplayName,
		"bio":            profile.Bio,
		"niches":         profile.Niches,
		"portfolio_url":  profile.PortfolioURL,
		"rate_per_video": profile.RatePerVideo,
		"updated_at":     profile.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update creator: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCreatorNotFound
	}
	return nil
}

func (r *CreatorRepository) List(ctx context.Context, filter ports.CreatorFilter) ([]domain.CreatorProfile, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Niche != "" {
		query["niches"] = filter.Niche
	}
	if filter.Search != "" {
		query["display_name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count creators: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "avg_rating", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list creators: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoCreator
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode creators: %w", err)
	}

	items := make([]domain.CreatorProfile, 0, len(docs))
	for _, m := range docs {
		items = append(items, *m.toDomain())
	}
	return items, total, nil
}

func (r *CreatorRepository) UpdateRating(ctx context.Context, id string, avgRating float64, reviewCount int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCreatorNotFound
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"avg_rating":   avgRating,
		"review_count": reviewCount,
	}})
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes for creator profiles.
func (r *CreatorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "niches", Value: 1}}},
		{Keys: bson.D{{Key: "avg_rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
