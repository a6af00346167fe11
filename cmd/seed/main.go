// Command seed wipes the database and reloads the development fixtures.
// Destructive: every existing row is dropped first.
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/ncnews/newsapi/internal/config"
	"github.com/ncnews/newsapi/internal/seed"
	"github.com/ncnews/newsapi/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw(err.Error())
	}

	ctx := context.Background()

	pool, err := store.NewPool(ctx, cfg.Database)
	if err != nil {
		sugar.Fatalw(err.Error())
	}
	defer pool.Close()

	data, err := seed.DevData()
	if err != nil {
		sugar.Fatalw(err.Error())
	}

	result, err := seed.New(store.New(pool), sugar).Run(ctx, data)
	if err != nil {
		sugar.Fatalw(err.Error())
	}

	sugar.Infow("seed complete",
		"topics", len(result.Topics),
		"users", len(result.Users),
		"articles", len(result.Articles),
		"comments", len(result.Comments),
	)
}
