package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/franthony00/VoiceLink/internal/core/domain"
)

const (
	collectionVoiceActorProfiles = "voice_actor_profiles"
	collectionClientProfiles     = "client_profiles"
)

// VoiceActorProfileRepository persists voice actor profiles keyed by the
// owner's user id. Upsert replaces the whole document, which matches the
// profile contract of last write wins.
type VoiceActorProfileRepository struct {
	col *mongo.Collection
}

func NewVoiceActorProfileRepository(db *mongo.Database) *VoiceActorProfileRepository {
	return &VoiceActorProfileRepository{col: db.Collection(collectionVoiceActorProfiles)}
}

func (r *VoiceActorProfileRepository) Upsert(ctx context.Context, profile *domain.VoiceActorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": profile.UserID},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert voice actor profile: %w", err)
	}
	return nil
}

func (r *VoiceActorProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.VoiceActorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.VoiceActorProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find voice actor profile: %w", err)
	}
	return &p, nil
}

func (r *VoiceActorProfileRepository) ListAll(ctx context.Context) ([]domain.VoiceActorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list voice actor profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := make([]domain.VoiceActorProfile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode voice actor profiles: %w", err)
	}
	return profiles, nil
}

// ClientProfileRepository persists client profiles keyed by the owner's user id.
type ClientProfileRepository struct {
	col *mongo.Collection
}

func NewClientProfileRepository(db *mongo.Database) *ClientProfileRepository {
	return &ClientProfileRepository{col: db.Collection(collectionClientProfiles)}
}

func (r *ClientProfileRepository) Upsert(ctx context.Context, profile *domain.ClientProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": profile.UserID},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert client profile: %w", err)
	}
	return nil
}

func (r *ClientProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.ClientProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find client profile: %w", err)
	}
	return &p, nil
}
