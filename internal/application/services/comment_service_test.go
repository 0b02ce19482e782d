package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/domain/entities"
)

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	cg := f.createCampground(t, alice, "Salmon Creek")
	other := f.createCampground(t, alice, "Granite Hill")

	created, err := f.commentSvc.CreateComment(ctx, &command.CreateCommentCommand{Actor: bob, CampgroundId: cg.Result.Id, Text: " great views "})
	require.NoError(t, err)
	assert.Equal(t, "great views", created.Result.Text)
	assert.Equal(t, "bob", created.Result.AuthorUsername)
	assert.Equal(t, 1, created.Campground.CommentCount)

	detail, err := f.campgroundSvc.GetCampground(ctx, cg.Result.Id)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, created.Result.Id, detail.Comments[0].Id)

	_, err = f.commentSvc.GetEditableComment(ctx, alice, cg.Result.Id, created.Result.Id)
	assert.ErrorIs(t, err, entities.ErrForbidden)
	_, err = f.commentSvc.GetEditableComment(ctx, bob, other.Result.Id, created.Result.Id)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	updated, err := f.commentSvc.UpdateComment(ctx, &command.UpdateCommentCommand{
		Actor: bob, CampgroundId: cg.Result.Id, CommentId: created.Result.Id, Text: "great views, cold nights",
	})
	require.NoError(t, err)
	assert.Equal(t, "great views, cold nights", updated.Result.Text)

	_, err = f.commentSvc.UpdateComment(ctx, &command.UpdateCommentCommand{
		Actor: bob, CampgroundId: cg.Result.Id, CommentId: created.Result.Id, Text: "   ",
	})
	assert.Error(t, err)

	admin := command.Actor{Id: alice.Id, Username: "alice", IsAdmin: true}
	require.NoError(t, f.commentSvc.DeleteComment(ctx, &command.DeleteCommentCommand{
		Actor: admin, CampgroundId: cg.Result.Id, CommentId: created.Result.Id,
	}))

	detail, err = f.campgroundSvc.GetCampground(ctx, cg.Result.Id)
	require.NoError(t, err)
	assert.Empty(t, detail.Comments)
	assert.Equal(t, 0, detail.Campground.CommentCount)
}

func TestCreateCommentOnMissingCampground(t *testing.T) {
	f := newFixture(t)
	bob := f.register(t, "bob")

	_, err := f.commentSvc.CreateComment(context.Background(), &command.CreateCommentCommand{
		Actor: bob, CampgroundId: primitive.NewObjectID().Hex(), Text: "hello",
	})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	_, err = f.commentSvc.GetCampgroundForComment(context.Background(), "nope")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
