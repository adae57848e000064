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

const certificateCollection = "certificates"

type CertificateRepository struct {
	coll *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{coll: db.Collection(certificateCollection)}
}

type certificateDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Organization   string             `bson:"organization"`
	Date           time.Time          `bson:"date"`
	ImageURL       string             `bson:"image_url,omitempty"`
	CertificateURL string             `bson:"certificate_url,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d certificateDoc) toDomain() domain.Certificate {
	return domain.Certificate{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Organization:   d.Organization,
		Date:           d.Date,
		ImageURL:       d.ImageURL,
		CertificateURL: d.CertificateURL,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *CertificateRepository) List(ctx context.Context) ([]domain.Certificate, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer cur.Close(ctx)

	certificates := []domain.Certificate{}
	for cur.Next(ctx) {
		var doc certificateDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode certificate: %w", err)
		}
		certificates = append(certificates, doc.toDomain())
	}
	return certificates, cur.Err()
}

func (r *CertificateRepository) FindByID(ctx context.Context, id string) (*domain.Certificate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCertificateNotFound
	}

	var doc certificateDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("find certificate: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, error) {
	doc := certificateDoc{
		Title:          c.Title,
		Organization:   c.Organization,
		Date:           c.Date,
		ImageURL:       c.ImageURL,
		CertificateURL: c.CertificateURL,
		CreatedAt:      c.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert certificate: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *CertificateRepository) Update(ctx context.Context, id string, c *domain.Certificate) (*domain.Certificate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCertificateNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":           c.Title,
		"organization":    c.Organization,
		"date":            c.Date,
		"image_url":       c.ImageURL,
		"certificate_url": c.CertificateURL,
	}}

	var doc certificateDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("update certificate: %w", err)
	}
	updated := doc.toDomain()
	return &updated, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCertificateNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
