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

type CampgroundRepository struct {
	collection *mongo.Collection
}

func NewCampgroundRepository(db *mongo.Database) repositories.CampgroundRepository {
	return &CampgroundRepository{collection: db.Collection(campgroundsCollection)}
}

func (r *CampgroundRepository) Create(ctx context.Context, campground *entities.Campground) (*entities.Campground, error) {
	if _, err := r.collection.InsertOne(ctx, newCampgroundModel(campground)); err != nil {
		return nil, err
	}
	return r.FindById(ctx, campground.Id)
}

func (r *CampgroundRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error) {
	var model CampgroundModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *CampgroundRepository) Find(ctx context.Context, filter repositories.CampgroundFilter) ([]*entities.Campground, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	return r.find(ctx, campgroundFilter(filter), opts)
}

func (r *CampgroundRepository) Count(ctx context.Context, filter repositories.CampgroundFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, campgroundFilter(filter))
}

func (r *CampgroundRepository) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*entities.Campground, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return r.find(ctx, bson.M{"author.id": authorID}, opts)
}

func (r *CampgroundRepository) Update(ctx context.Context, campground *entities.Campground) (*entities.Campground, error) {
	update := bson.M{"$set": bson.M{
		"name":        campground.Name,
		"cost":        campground.Cost,
		"image":       campground.Image,
		"description": campground.Description,
		"location":    campground.Location,
		"lat":         campground.Lat,
		"lng":         campground.Lng,
	}}
	return r.findOneAndUpdate(ctx, campground.Id, update)
}

func (r *CampgroundRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error) {
	var model CampgroundModel
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *CampgroundRepository) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*entities.Campground, error) {
	return r.findOneAndUpdate(ctx, id, toggleLikePipeline(userID))
}

func (r *CampgroundRepository) AddComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{"$push": bson.M{"comments": commentID}})
}

func (r *CampgroundRepository) RemoveComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{"$pull": bson.M{"comments": commentID}})
}

func (r *CampgroundRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *CampgroundRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update interface{}) (*entities.Campground, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var model CampgroundModel
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *CampgroundRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]*entities.Campground, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var models []CampgroundModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	campgrounds := make([]*entities.Campground, 0, len(models))
	for i := range models {
		campgrounds = append(campgrounds, models[i].toEntity())
	}
	return campgrounds, nil
}
