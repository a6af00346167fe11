//
// nc-news API
// ===========
// A REST backend for a small news site: topics contain articles, articles
// collect comments, and users author both.
//
// Boot the server (needs a reachable PostgreSQL, see DATABASE_DSN):
// ----------------
// $ go run .
//
// Load the development fixtures:
// ----------------
// $ go run ./cmd/seed
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/api/topics
// {"topics":[{"slug":"cats","description":"Not dogs"}, ...]}
//
// $ curl http://localhost:3333/api/articles
// {"articles":[...]}
//
// Passing -routes generates markdown docs for the router instead of serving.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	"github.com/ncnews/newsapi/internal/article"
	"github.com/ncnews/newsapi/internal/comment"
	"github.com/ncnews/newsapi/internal/config"
	"github.com/ncnews/newsapi/internal/errresponse"
	"github.com/ncnews/newsapi/internal/seed"
	"github.com/ncnews/newsapi/internal/store"
	"github.com/ncnews/newsapi/internal/topic"
	"github.com/ncnews/newsapi/internal/user"
)

const ServiceName = "newsapi"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	sugarLogger *zap.SugaredLogger
}

// endpoints is served at GET /api so clients can discover the surface.
var endpoints = map[string]string{
	"GET /api/topics":                          "all topics",
	"GET /api/topics/:topic_slug/articles":     "articles for a topic",
	"POST /api/topics/:topic_slug/articles":    "add an article to a topic",
	"GET /api/articles":                        "all articles with comment counts",
	"GET /api/articles/:article_id":            "one article with comment count",
	"PATCH /api/articles/:article_id":          "vote on an article (?vote=up|down)",
	"GET /api/articles/:article_id/comments":   "comments for an article",
	"POST /api/articles/:article_id/comments":  "add a comment to an article",
	"PATCH /api/comments/:comment_id":          "vote on a comment (?vote=up|down)",
	"DELETE /api/comments/:comment_id":         "delete a comment",
	"GET /api/users/:username":                 "one user profile",
}

// nolint
func main() {
	// nolint
	var (
		routes   = flag.Bool("routes", getEnvBool(ServiceName+"_routes", false), "Generate router documentation")
		addr     = flag.String("addr", getEnv(ServiceName+"_ADDR", ""), "application port")
		diagPort = flag.String("diag_addr", getEnv(ServiceName+"_DIAG_ADDR", ""), "diag port")
		doSeed   = flag.Bool("seed", false, "Reload the development fixtures before serving")
	)

	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	a := App{
		sugarLogger: sugar,
	}

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw(err.Error())
	}
	if *addr == "" {
		*addr = cfg.Server.Addr
	}
	if *diagPort == "" {
		*diagPort = cfg.Server.DiagAddr
	}

	promConfig := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(promConfig.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(promConfig, c)
	if err != nil {
		a.sugarLogger.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("status", "200")}
	RequestCompletedCount := metric.Must(meter).NewInt64Counter(
		"http/server/completed_count",
		metric.WithDescription("Count of completed requests, by HTTP method and response status"),
	).Bind(labels...)
	defer RequestCompletedCount.Unbind()

	ctx := context.Background()

	pool, err := store.NewPool(ctx, cfg.Database)
	if err != nil {
		sugar.Fatalw(err.Error())
	}
	defer pool.Close()

	db := store.New(pool)

	if *doSeed {
		data, err := seed.DevData()
		if err != nil {
			sugar.Fatalw(err.Error())
		}
		if _, err := seed.New(db, sugar).Run(ctx, data); err != nil {
			sugar.Fatalw(err.Error())
		}
	}

	r := chi.NewRouter()

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if err := render.Render(w, req, errresponse.NotFound); err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		logger := req.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping")
		RequestCompletedCount.Add(req.Context(), 1)
		_, err := w.Write([]byte("pong"))
		if err != nil {
			sugar.Errorw(err.Error())
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, map[string]interface{}{"endpoints": endpoints})
		})

		r.Mount("/topics", topic.NewHandler(db, sugar).Routes())
		r.Mount("/articles", article.NewHandler(db, sugar).Routes())
		r.Mount("/comments", comment.NewHandler(db, sugar).Routes())
		r.Mount("/users", user.NewHandler(db, sugar).Routes())
	})

	// Passing -routes to the program will generate docs for the above
	// router definition.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/ncnews/newsapi",
			Intro:       "nc-news API generated docs.",
		}))

		return
	}

	go func() {
		err = http.ListenAndServe(*addr, r)
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	err = http.ListenAndServe(*diagPort, diagRouter)
	if err != nil {
		a.sugarLogger.Errorw(err.Error())
	}
}

func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return fallback
}
