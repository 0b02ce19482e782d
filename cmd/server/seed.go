package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"yelpcamp/internal/config"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure"
)

type seedCampground struct {
	name        string
	cost        float64
	image       string
	description string
	location    entities.Location
	comment     string
}

var seedCampgrounds = []seedCampground{
	{
		name:        "Salmon Creek",
		cost:        12.5,
		image:       "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4",
		description: "Quiet sites along the creek with plenty of shade.",
		location:    entities.Location{Address: "Salmon Creek, WA, USA", Lat: 45.7107, Lng: -122.6483},
		comment:     "Great place, but I wish there was internet.",
	},
	{
		name:        "Granite Hill",
		cost:        9,
		image:       "https://images.unsplash.com/photo-1532339142463-fd0a8979791a",
		description: "A huge granite hill. No bathrooms, no water. Beautiful granite!",
		location:    entities.Location{Address: "Granite Hill, CA, USA", Lat: 38.1727, Lng: -120.4091},
		comment:     "Bring your own water.",
	},
	{
		name:        "Mountain Goat's Rest",
		cost:        15,
		image:       "https://images.unsplash.com/photo-1487730116645-74489c95b41b",
		description: "High alpine meadow with views of three ranges.",
		location:    entities.Location{Address: "Glacier National Park, MT, USA", Lat: 48.7596, Lng: -113.787},
		comment:     "The goats are friendly.",
	},
}

var (
	seedUsername string
	seedEmail    string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a sample user with campgrounds and comments",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedUsername, "username", "camper", "username of the seed author")
	seedCmd.Flags().StringVar(&seedEmail, "email", "camper@yelpcamp.local", "email of the seed author")
	seedCmd.Flags().StringVar(&seedPassword, "password", "password", "password of the seed author")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != "mongo" {
		return errors.New("seed requires STORE=mongo")
	}
	logger, err := infrastructure.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	st, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.close(context.Background()) }()

	return seed(ctx, st, logger)
}

func seed(ctx context.Context, st *store, logger *zap.Logger) error {
	author, err := seedAuthor(ctx, st.users)
	if err != nil {
		return err
	}
	ref := entities.Author{Id: author.Id, Username: author.Username}

	for _, sc := range seedCampgrounds {
		n, err := st.campgrounds.Count(ctx, repositories.CampgroundFilter{Search: sc.name})
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("campground already seeded", zap.String("name", sc.name))
			continue
		}

		cg := entities.NewCampground(sc.name, sc.cost, sc.image, sc.description, ref)
		cg.SetLocation(sc.location)
		created, err := st.campgrounds.Create(ctx, cg)
		if err != nil {
			return fmt.Errorf("seed campground %q: %w", sc.name, err)
		}
		comment, err := st.comments.Create(ctx, entities.NewComment(sc.comment, ref, created.Id))
		if err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
		if err := st.campgrounds.AddComment(ctx, created.Id, comment.Id); err != nil {
			return fmt.Errorf("attach comment: %w", err)
		}
		logger.Info("added a campground", zap.String("name", created.Name), zap.String("id", created.Id.Hex()))
	}
	return nil
}

func seedAuthor(ctx context.Context, users repositories.UserRepository) (*entities.User, error) {
	existing, err := users.FindByUsername(ctx, seedUsername)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	vu, err := entities.NewValidatedUser(entities.NewUser(seedUsername, seedEmail, seedPassword))
	if err != nil {
		return nil, err
	}
	return users.Create(ctx, vu)
}
