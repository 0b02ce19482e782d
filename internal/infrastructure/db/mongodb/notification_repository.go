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

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) repositories.NotificationRepository {
	return &NotificationRepository{collection: db.Collection(notificationsCollection)}
}

func (r *NotificationRepository) CreateMany(ctx context.Context, notifications []*entities.Notification) ([]*entities.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}
	docs := make([]interface{}, 0, len(notifications))
	for _, n := range notifications {
		docs = append(docs, newNotificationModel(n))
	}
	// Ordered so a failure leaves a contiguous prefix inserted.
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error) {
	var model NotificationModel
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *NotificationRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID, unreadOnly bool) ([]*entities.Notification, error) {
	filter := idsFilter(ids)
	if unreadOnly {
		filter["isRead"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var models []NotificationModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	notifications := make([]*entities.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, models[i].toEntity())
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var model NotificationModel
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": true}}, opts).Decode(&model)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}
