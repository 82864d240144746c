package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lawconnect/case-management/internal/core/domain"
)

const lawyersCollection = "lawyers"

type LawyerRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewLawyerRepository(db *mongo.Database) *LawyerRepository {
	return &LawyerRepository{coll: db.Collection(lawyersCollection), seq: newSequences(db)}
}

func (r *LawyerRepository) FindAll(ctx context.Context) ([]*domain.Lawyer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list lawyers: %w", err)
	}
	defer cur.Close(ctx)

	lawyers := make([]*domain.Lawyer, 0)
	if err := cur.All(ctx, &lawyers); err != nil {
		return nil, fmt.Errorf("decode lawyers: %w", err)
	}
	return lawyers, nil
}

// SeedDefaults inserts a starter set of lawyers when the collection is empty
// so a fresh development database has something to list. Production data is
// managed out of band.
func (r *LawyerRepository) SeedDefaults(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count lawyers: %w", err)
	}
	if n > 0 {
		return nil
	}

	defaults := []domain.Lawyer{
		{Name: "Maria Alvarez", Specialization: "Family Law", Email: "m.alvarez@lawconnect.test", PhoneNumber: "555-0101"},
		{Name: "James Okafor", Specialization: "Criminal Defense", Email: "j.okafor@lawconnect.test", PhoneNumber: "555-0102"},
		{Name: "Priya Natarajan", Specialization: "Corporate Law", Email: "p.natarajan@lawconnect.test", PhoneNumber: "555-0103"},
	}

	docs := make([]interface{}, 0, len(defaults))
	for _, l := range defaults {
		id, err := r.seq.Next(ctx, lawyersCollection)
		if err != nil {
			return err
		}
		l.ID = id
		docs = append(docs, l)
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed lawyers: %w", err)
	}
	return nil
}
