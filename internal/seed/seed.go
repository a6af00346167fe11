package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ncnews/newsapi/internal/model"
)

// Store is the persistence surface the pipeline needs. *store.Store
// satisfies it.
type Store interface {
	Reset(ctx context.Context) error
	InsertTopics(ctx context.Context, topics []model.Topic) ([]model.Topic, error)
	InsertUsers(ctx context.Context, users []model.User) ([]model.User, error)
	InsertArticles(ctx context.Context, articles []model.Article) ([]model.Article, error)
	InsertComments(ctx context.Context, comments []model.Comment) ([]model.Comment, error)
}

// Result holds the four persisted document sets, each in insertion order,
// for caller introspection (test setup needing generated ids).
type Result struct {
	Topics   []model.Topic
	Users    []model.User
	Articles []model.Article
	Comments []model.Comment
}

// Seeder orchestrates the full clear-then-reload of the store.
type Seeder struct {
	store Store
	log   *zap.SugaredLogger
}

// New creates a Seeder.
func New(store Store, log *zap.SugaredLogger) *Seeder {
	return &Seeder{store: store, log: log}
}

// Run reloads the store from the fixture data.
//
// Phases, in strict order:
//  1. clear all existing content (irreversible, no backup)
//  2. insert topics and users concurrently; neither depends on the other,
//     but both must finish before phase 3
//  3. build the username→id index, format articles, insert them
//  4. build the title→id index from the articles just inserted, format
//     comments using both indexes, insert them
//
// Not transactional: the first failure aborts the remaining phases and
// leaves the store partially seeded. Callers wanting a clean state must
// re-run the whole pipeline.
func (s *Seeder) Run(ctx context.Context, data *Data) (*Result, error) {
	if err := s.store.Reset(ctx); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}

	s.log.Infow("seeding topics and users",
		"topics", len(data.Topics), "users", len(data.Users))

	var (
		topicDocs []model.Topic
		userDocs  []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topicDocs, err = s.store.InsertTopics(gctx, formatTopics(data.Topics))

		return err
	})
	g.Go(func() error {
		var err error
		userDocs, err = s.store.InsertUsers(gctx, formatUsers(data.Users))

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("seed topics and users: %w", err)
	}

	userIndex, err := BuildIndex(data.Users, userDocs,
		func(f UserFixture) string { return f.Username },
		func(u model.User) uuid.UUID { return u.ID })
	if err != nil {
		return nil, err
	}

	s.log.Infow("seeding articles", "articles", len(data.Articles))

	articles, err := FormatArticles(data.Articles, userIndex)
	if err != nil {
		return nil, err
	}

	articleDocs, err := s.store.InsertArticles(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("seed articles: %w", err)
	}

	titleIndex, err := BuildIndex(data.Articles, articleDocs,
		func(f ArticleFixture) string { return f.Title },
		func(a model.Article) uuid.UUID { return a.ID })
	if err != nil {
		return nil, err
	}

	s.log.Infow("seeding comments", "comments", len(data.Comments))

	comments, err := FormatComments(data.Comments, userIndex, titleIndex)
	if err != nil {
		return nil, err
	}

	commentDocs, err := s.store.InsertComments(ctx, comments)
	if err != nil {
		return nil, fmt.Errorf("seed comments: %w", err)
	}

	return &Result{
		Topics:   topicDocs,
		Users:    userDocs,
		Articles: articleDocs,
		Comments: commentDocs,
	}, nil
}

func formatTopics(fixtures []TopicFixture) []model.Topic {
	topics := make([]model.Topic, 0, len(fixtures))
	for _, f := range fixtures {
		topics = append(topics, model.Topic{Slug: f.Slug, Description: f.Description})
	}

	return topics
}

func formatUsers(fixtures []UserFixture) []model.User {
	users := make([]model.User, 0, len(fixtures))
	for _, f := range fixtures {
		users = append(users, model.User{Username: f.Username, Name: f.Name, AvatarURL: f.AvatarURL})
	}

	return users
}
