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

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

const (
	profileCollection      = "profile"
	profileSkillCollection = "profile_skills"
)

// ProfileRepository persists the single profile document plus its attached
// skills. Writes upsert, so the service works before any seed has run.
type ProfileRepository struct {
	profile *mongo.Collection
	skills  *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		profile: db.Collection(profileCollection),
		skills:  db.Collection(profileSkillCollection),
	}
}

type profileDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email,omitempty"`
	Summary      string             `bson:"summary,omitempty"`
	Location     string             `bson:"location,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty"`
	CVURL        string             `bson:"cv_url,omitempty"`
	SocialLinks  map[string]string  `bson:"social_links,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d profileDoc) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Summary:      d.Summary,
		Location:     d.Location,
		ProfileImage: d.ProfileImage,
		CVURL:        d.CVURL,
		SocialLinks:  d.SocialLinks,
		UpdatedAt:    d.UpdatedAt,
	}
}

type profileSkillDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	SkillID  string             `bson:"skill_id"`
	Name     string             `bson:"name"`
	LogoURL  string             `bson:"logo_url,omitempty"`
	LogoSVG  string             `bson:"logo_svg,omitempty"`
	Category string             `bson:"category"`
	Level    int                `bson:"level"`
}

func (d profileSkillDoc) toDomain() domain.ProfileSkill {
	return domain.ProfileSkill{
		ID:       d.ID.Hex(),
		SkillID:  d.SkillID,
		Name:     d.Name,
		LogoURL:  d.LogoURL,
		LogoSVG:  d.LogoSVG,
		Category: d.Category,
		Level:    d.Level,
	}
}

func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	var doc profileDoc
	if err := r.profile.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) Update(ctx context.Context, in ports.ProfileUpdateInput) (*domain.Profile, error) {
	update := bson.M{"$set": bson.M{
		"name":          in.Name,
		"summary":       in.Summary,
		"location":      in.Location,
		"profile_image": in.ProfileImage,
		"cv_url":        in.CVURL,
		"social_links":  in.SocialLinks,
		"updated_at":    time.Now().UTC(),
	}}

	var doc profileDoc
	err := r.profile.FindOneAndUpdate(ctx, bson.M{}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) SetProfileImage(ctx context.Context, url string) error {
	return r.setField(ctx, "profile_image", url)
}

func (r *ProfileRepository) SetCV(ctx context.Context, url string) error {
	return r.setField(ctx, "cv_url", url)
}

func (r *ProfileRepository) setField(ctx context.Context, field, value string) error {
	_, err := r.profile.UpdateOne(ctx, bson.M{},
		bson.M{"$set": bson.M{field: value, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set profile %s: %w", field, err)
	}
	return nil
}

func (r *ProfileRepository) ListSkills(ctx context.Context) ([]domain.ProfileSkill, error) {
	cur, err := r.skills.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list profile skills: %w", err)
	}
	defer cur.Close(ctx)

	skills := []domain.ProfileSkill{}
	for cur.Next(ctx) {
		var doc profileSkillDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile skill: %w", err)
		}
		skills = append(skills, doc.toDomain())
	}
	return skills, cur.Err()
}

func (r *ProfileRepository) AddSkill(ctx context.Context, ps *domain.ProfileSkill) (*domain.ProfileSkill, error) {
	doc := profileSkillDoc{
		SkillID:  ps.SkillID,
		Name:     ps.Name,
		LogoURL:  ps.LogoURL,
		LogoSVG:  ps.LogoSVG,
		Category: ps.Category,
		Level:    ps.Level,
	}

	res, err := r.skills.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert profile skill: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	added := doc.toDomain()
	return &added, nil
}

func (r *ProfileRepository) UpdateSkillLevel(ctx context.Context, id string, level int) (*domain.ProfileSkill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileSkillNotFound
	}

	var doc profileSkillDoc
	err = r.skills.FindOneAndUpdate(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"level": level}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileSkillNotFound
		}
		return nil, fmt.Errorf("update profile skill: %w", err)
	}
	updated := doc.toDomain()
	return &updated, nil
}

func (r *ProfileRepository) RemoveSkill(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProfileSkillNotFound
	}

	res, err := r.skills.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("remove profile skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileSkillNotFound
	}
	return nil
}

func (r *ProfileRepository) RemoveBySkillID(ctx context.Context, skillID string) error {
	if _, err := r.skills.DeleteMany(ctx, bson.M{"skill_id": skillID}); err != nil {
		return fmt.Errorf("remove profile skills by skill: %w", err)
	}
	return nil
}
