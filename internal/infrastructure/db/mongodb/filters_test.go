package mongodb

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

func TestCampgroundFilterEscapesSearch(t *testing.T) {
	assert.Empty(t, campgroundFilter(repositories.CampgroundFilter{}))
	assert.Empty(t, campgroundFilter(repositories.CampgroundFilter{Search: "   "}))

	f := campgroundFilter(repositories.CampgroundFilter{Search: "Salmon (Creek)+"})
	re, ok := f["name"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "i", re.Options)

	compiled := regexp.MustCompile("(?i)" + re.Pattern)
	assert.True(t, compiled.MatchString("big salmon (creek)+ camp"))
	assert.False(t, compiled.MatchString("Salmon Creek"))
}

func TestToggleLikePipelineShape(t *testing.T) {
	user := primitive.NewObjectID()
	pipeline := toggleLikePipeline(user)
	require.Len(t, pipeline, 1)

	raw, err := bson.Marshal(pipeline[0])
	require.NoError(t, err)

	var decoded struct {
		Set struct {
			Likes struct {
				Cond []bson.Raw `bson:"$cond"`
			} `bson:"likes"`
		} `bson:"$set"`
	}
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Set.Likes.Cond, 3, "$cond must carry if/then/else")

	_, err = decoded.Set.Likes.Cond[0].LookupErr("$in")
	assert.NoError(t, err)
	_, err = decoded.Set.Likes.Cond[1].LookupErr("$filter")
	assert.NoError(t, err)
	_, err = decoded.Set.Likes.Cond[2].LookupErr("$concatArrays")
	assert.NoError(t, err)
}

func TestUserModelRoundTrip(t *testing.T) {
	u := entities.NewUser("alice", "alice@example.com", "hash")
	u.FirstName = "Alice"
	u.IsAdmin = true
	u.Followers = append(u.Followers, primitive.NewObjectID())
	u.SetResetToken("tok", time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond))

	got := newUserModel(u).toEntity()
	if diff := cmp.Diff(u, got); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}

	u.ClearResetToken()
	m := newUserModel(u)
	assert.Nil(t, m.ResetPasswordExpires)
	assert.Empty(t, m.ResetPasswordToken)
}

func TestCampgroundModelKeepsEmptyArrays(t *testing.T) {
	c := &entities.Campground{Id: primitive.NewObjectID(), Name: "x"}
	m := newCampgroundModel(c)
	assert.NotNil(t, m.Likes)
	assert.NotNil(t, m.Comments)

	raw, err := bson.Marshal(m)
	require.NoError(t, err)
	likes, err := bson.Raw(raw).LookupErr("likes")
	require.NoError(t, err)
	assert.Equal(t, bson.TypeArray, likes.Type)
}

func TestIdsFilterNeverNil(t *testing.T) {
	f := idsFilter(nil)
	in := f["_id"].(bson.M)["$in"].([]primitive.ObjectID)
	assert.NotNil(t, in)
	assert.Len(t, in, 0)
}

func TestAppendFailuresReportsMissingRecipients(t *testing.T) {
	bob, ghost, carol := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	refs := []repositories.NotificationRef{
		{UserId: bob, NotificationId: primitive.NewObjectID()},
		{UserId: ghost, NotificationId: primitive.NewObjectID()},
		{UserId: carol, NotificationId: primitive.NewObjectID()},
	}
	writeErr := errors.New("document too large")

	failures := appendFailures(refs, map[int]error{2: writeErr}, map[primitive.ObjectID]bool{bob: true, carol: true})
	require.Len(t, failures, 2)
	assert.Equal(t, ghost, failures[0].Ref.UserId)
	assert.ErrorIs(t, failures[0].Err, entities.ErrNotFound)
	assert.Equal(t, carol, failures[1].Ref.UserId)
	assert.Equal(t, writeErr, failures[1].Err)

	assert.Empty(t, appendFailures(refs, nil, map[primitive.ObjectID]bool{bob: true, ghost: true, carol: true}))
}
