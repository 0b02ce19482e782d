package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCampground() *Campground {
	author := Author{Id: primitive.NewObjectID(), Username: "alice"}
	return NewCampground("Granite Hill", 9.5, "https://img", "rocks", author)
}

func TestCampgroundValidate(t *testing.T) {
	c := newTestCampground()
	assert.NoError(t, c.Validate())

	assert.Error(t, c.Update("   ", 1, "", ""))
	assert.Error(t, c.Update("Granite Hill", -1, "", ""))

	orphan := NewCampground("x", 0, "", "", Author{})
	assert.Error(t, orphan.Validate())
}

func TestToggleLikeTwiceRestoresList(t *testing.T) {
	c := newTestCampground()
	other := primitive.NewObjectID()
	c.Likes = append(c.Likes, other)
	original := append([]primitive.ObjectID(nil), c.Likes...)

	user := primitive.NewObjectID()
	assert.True(t, c.ToggleLike(user))
	assert.True(t, c.LikedBy(user))
	assert.Len(t, c.Likes, 2)

	assert.False(t, c.ToggleLike(user))
	assert.False(t, c.LikedBy(user))
	assert.Equal(t, original, c.Likes)
}

func TestToggleLikeDoesNotAliasRemovedSlice(t *testing.T) {
	c := newTestCampground()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	c.Likes = []primitive.ObjectID{a, b}
	before := c.Likes

	c.ToggleLike(a)
	assert.Equal(t, []primitive.ObjectID{b}, c.Likes)
	assert.Equal(t, []primitive.ObjectID{a, b}, before)
}

func TestCampgroundOwnership(t *testing.T) {
	c := newTestCampground()
	stranger := primitive.NewObjectID()

	assert.True(t, c.IsOwnedBy(c.Author.Id, false))
	assert.False(t, c.IsOwnedBy(stranger, false))
	assert.True(t, c.IsOwnedBy(stranger, true))
}

func TestCampgroundComments(t *testing.T) {
	c := newTestCampground()
	first, second := primitive.NewObjectID(), primitive.NewObjectID()
	c.AddComment(first)
	c.AddComment(second)
	c.RemoveComment(first)

	require.Len(t, c.Comments, 1)
	assert.Equal(t, second, c.Comments[0])
}

func TestSetLocation(t *testing.T) {
	c := newTestCampground()
	c.SetLocation(Location{Address: "Yosemite, CA, USA", Lat: 37.86, Lng: -119.53})

	assert.Equal(t, "Yosemite, CA, USA", c.Location)
	assert.InDelta(t, 37.86, c.Lat, 1e-9)
	assert.InDelta(t, -119.53, c.Lng, 1e-9)
}

func TestCommentEditAndOwnership(t *testing.T) {
	author := Author{Id: primitive.NewObjectID(), Username: "bob"}
	cm := NewComment(" nice ", author, primitive.NewObjectID())
	require.NoError(t, cm.Validate())
	assert.Equal(t, "nice", cm.Text)

	assert.Error(t, cm.Edit(" "))
	assert.True(t, cm.IsOwnedBy(author.Id, false))
	assert.False(t, cm.IsOwnedBy(primitive.NewObjectID(), false))
}

func TestValidationErrorsCarryDisplayMessage(t *testing.T) {
	err := NewCampground(" ", 1, "", "", Author{Id: primitive.NewObjectID()}).Validate()
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "campground name cannot be blank", invalid.Message)

	// Missing author is a programming error, not user input.
	err = NewCampground("Salmon Creek", 1, "", "", Author{}).Validate()
	require.Error(t, err)
	assert.False(t, errors.As(err, &invalid))
}
