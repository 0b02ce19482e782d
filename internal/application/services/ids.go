package services

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/domain/entities"
)

// parseID treats a malformed id like a missing document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, entities.ErrNotFound
	}
	return oid, nil
}

func actorID(actor command.Actor) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(actor.Id)
	if err != nil {
		return primitive.NilObjectID, entities.ErrForbidden
	}
	return oid, nil
}
