package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/eduhub-platform/backend/internal/domain"
)

const postsCollection = "posts"

// MongoPostRepository implements PostRepository on a MongoDB collection
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(postsCollection)}
}

func buildFilter(filter PostFilter) bson.M {
	query := bson.M{}
	if filter.PublishedOnly {
		query["is_published"] = true
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"excerpt": pattern},
		}
	}
	return query
}

// Find returns matching posts, newest first, honoring skip and limit
func (r *MongoPostRepository) Find(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []domain.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the full matching count, ignoring skip and limit
func (r *MongoPostRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, buildFilter(filter))
}

// GetBySlug retrieves a post by slug; (nil, nil) when absent
func (r *MongoPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// ExistsBySlug checks whether any post carries the slug
func (r *MongoPostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert stores a new post document
func (r *MongoPostRepository) Insert(ctx context.Context, post *domain.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// Update replaces an existing post document by id
func (r *MongoPostRepository) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a post document by id
func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoPostRepository) findOne(ctx context.Context, filter bson.M) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.collection.FindOne(ctx, filter).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}
