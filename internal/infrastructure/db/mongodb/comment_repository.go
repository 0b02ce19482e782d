package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repositories.CommentRepository {
	return &CommentRepository{collection: db.Collection(commentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	if _, err := r.collection.InsertOne(ctx, newCommentModel(comment)); err != nil {
		return nil, err
	}
	return r.FindById(ctx, comment.Id)
}

func (r *CommentRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Comment, error) {
	var model CommentModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *CommentRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, idsFilter(ids), opts)
	if err != nil {
		return nil, err
	}
	var models []CommentModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	comments := make([]*entities.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, models[i].toEntity())
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	update := bson.M{"$set": bson.M{"text": comment.Text, "updatedAt": comment.UpdatedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var model CommentModel
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": comment.Id}, update, opts).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.collection.DeleteMany(ctx, idsFilter(ids))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
