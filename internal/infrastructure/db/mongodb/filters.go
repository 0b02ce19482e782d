package mongodb

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"yelpcamp/internal/domain/repositories"
)

// campgroundFilter matches names containing the search term literally, ignoring case.
func campgroundFilter(filter repositories.CampgroundFilter) bson.M {
	search := strings.TrimSpace(filter.Search)
	if search == "" {
		return bson.M{}
	}
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}
}

// toggleLikePipeline removes userID from likes when present and appends it otherwise,
// in a single server-side update.
func toggleLikePipeline(userID primitive.ObjectID) mongo.Pipeline {
	likes := bson.D{{Key: "$ifNull", Value: bson.A{"$likes", bson.A{}}}}
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$in", Value: bson.A{userID, likes}}},
			bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: likes},
				{Key: "as", Value: "like"},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$like", userID}}}},
			}}},
			bson.D{{Key: "$concatArrays", Value: bson.A{likes, bson.A{userID}}}},
		}}}}}}},
	}
}

func idsFilter(ids []primitive.ObjectID) bson.M {
	return bson.M{"_id": bson.M{"$in": nonNilIds(ids)}}
}
