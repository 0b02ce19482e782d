package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	if _, err := r.collection.InsertOne(ctx, newUserModel(userEntity)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrDuplicateUser
		}
		return nil, err
	}

	return r.FindById(ctx, userEntity.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.User, error) {
	cursor, err := r.collection.Find(ctx, idsFilter(ids), options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var models []UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].toEntity())
	}
	return users, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": now},
	})
}

func (r *UserRepository) SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expires time.Time) (*entities.User, error) {
	update := bson.M{"$set": bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expires,
		"updatedAt":            time.Now(),
	}}
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID}, update)
}

func (r *UserRepository) ResetPassword(ctx context.Context, userID primitive.ObjectID, token, passwordHash string, now time.Time) (*entities.User, error) {
	filter := bson.M{
		"_id":                  userID,
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": now},
	}
	update := bson.M{
		"$set":   bson.M{"password": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *UserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID}, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (r *UserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": userID}, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (r *UserRepository) AppendNotifications(ctx context.Context, refs []repositories.NotificationRef) ([]repositories.AppendFailure, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	writes := make([]mongo.WriteModel, 0, len(refs))
	for _, ref := range refs {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": ref.UserId}).
			SetUpdate(bson.M{"$push": bson.M{"notifications": ref.NotificationId}}))
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err == nil && res != nil && res.MatchedCount == int64(len(refs)) {
		return nil, nil
	}

	failed := make(map[int]error)
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if !errors.As(err, &bulkErr) || len(bulkErr.WriteErrors) == 0 {
			return nil, fmt.Errorf("append notifications: %w", err)
		}
		for _, we := range bulkErr.WriteErrors {
			if we.Index >= 0 && we.Index < len(refs) {
				failed[we.Index] = errors.New(we.Message)
			}
		}
	}

	// An update whose recipient is gone matches nothing and raises no write error.
	existing, err := r.existingIds(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("append notifications: %w", err)
	}
	return appendFailures(refs, failed, existing), nil
}

func (r *UserRepository) existingIds(ctx context.Context, refs []repositories.NotificationRef) (map[primitive.ObjectID]bool, error) {
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.UserId)
	}
	cursor, err := r.collection.Find(ctx, idsFilter(ids), options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		Id primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	existing := make(map[primitive.ObjectID]bool, len(docs))
	for _, d := range docs {
		existing[d.Id] = true
	}
	return existing, nil
}

// appendFailures lists write errors by index and refs whose recipient does not exist.
func appendFailures(refs []repositories.NotificationRef, failed map[int]error, existing map[primitive.ObjectID]bool) []repositories.AppendFailure {
	var failures []repositories.AppendFailure
	for i, ref := range refs {
		switch {
		case failed[i] != nil:
			failures = append(failures, repositories.AppendFailure{Ref: ref, Err: failed[i]})
		case !existing[ref.UserId]:
			failures = append(failures, repositories.AppendFailure{Ref: ref, Err: entities.ErrNotFound})
		}
	}
	return failures
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entities.User, error) {
	var userModel UserModel
	if err := r.collection.FindOne(ctx, filter).Decode(&userModel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return userModel.toEntity(), nil
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*entities.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var userModel UserModel
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&userModel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return userModel.toEntity(), nil
}
