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
)

const experienceCollection = "experiences"

type ExperienceRepository struct {
	coll *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{coll: db.Collection(experienceCollection)}
}

type experienceDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Company      string             `bson:"company"`
	Position     string             `bson:"position"`
	StartDate    time.Time          `bson:"start_date"`
	EndDate      *time.Time         `bson:"end_date,omitempty"`
	Current      bool               `bson:"current"`
	Description  string             `bson:"description,omitempty"`
	Technologies []string           `bson:"technologies"`
	Location     string             `bson:"location,omitempty"`
	CompanyLogo  string             `bson:"company_logo,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d experienceDoc) toDomain() domain.Experience {
	return domain.Experience{
		ID:           d.ID.Hex(),
		Company:      d.Company,
		Position:     d.Position,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Current:      d.Current,
		Description:  d.Description,
		Technologies: d.Technologies,
		Location:     d.Location,
		CompanyLogo:  d.CompanyLogo,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer cur.Close(ctx)

	experiences := []domain.Experience{}
	for cur.Next(ctx) {
		var doc experienceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode experience: %w", err)
		}
		experiences = append(experiences, doc.toDomain())
	}
	return experiences, cur.Err()
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	var doc experienceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}
	e := doc.toDomain()
	return &e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	doc := experienceDoc{
		Company:      e.Company,
		Position:     e.Position,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Current:      e.Current,
		Description:  e.Description,
		Technologies: e.Technologies,
		Location:     e.Location,
		CompanyLogo:  e.CompanyLogo,
		CreatedAt:    e.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, id string, e *domain.Experience) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	update := bson.M{"$set": bson.M{
		"company":      e.Company,
		"position":     e.Position,
		"start_date":   e.StartDate,
		"end_date":     e.EndDate,
		"current":      e.Current,
		"description":  e.Description,
		"technologies": e.Technologies,
		"location":     e.Location,
		"company_logo": e.CompanyLogo,
	}}

	var doc experienceDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("update experience: %w", err)
	}
	updated := doc.toDomain()
	return &updated, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrExperienceNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}
