package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ncnews/newsapi/internal/apperr"
	"github.com/ncnews/newsapi/internal/model"
)

type mockStore struct {
	topics      []model.Topic
	topic       *model.Topic
	articles    []model.Article
	user        *model.User
	getTopicErr error
	getUserErr  error
	listCalls   int
	insertCalls int
}

func (m *mockStore) ListTopics(ctx context.Context) ([]model.Topic, error) {
	return m.topics, nil
}

func (m *mockStore) GetTopic(ctx context.Context, slug string) (*model.Topic, error) {
	if m.getTopicErr != nil {
		return nil, m.getTopicErr
	}

	return m.topic, nil
}

func (m *mockStore) ListArticlesByTopic(ctx context.Context, slug string) ([]model.Article, error) {
	m.listCalls++

	return m.articles, nil
}

func (m *mockStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getUserErr != nil {
		return nil, m.getUserErr
	}

	return m.user, nil
}

func (m *mockStore) InsertArticle(ctx context.Context, article model.Article) (*model.Article, error) {
	m.insertCalls++
	a := article
	a.ID = uuid.New()

	return &a, nil
}

func newTestServer(store *mockStore) *httptest.Server {
	return httptest.NewServer(NewHandler(store, zap.NewNop().Sugar()).Routes())
}

func TestListTopics(t *testing.T) {
	store := &mockStore{
		topics: []model.Topic{
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "coding", Description: "Code is love, code is life"},
		},
	}
	srv := newTestServer(store)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Topics []model.Topic `json:"topics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Topics, 2)
	assert.Equal(t, "cats", body.Topics[0].Slug)
}

func TestListArticlesByTopic(t *testing.T) {
	t.Run("articles under the topic", func(t *testing.T) {
		store := &mockStore{
			articles: []model.Article{
				{ID: uuid.New(), Title: "Hi", BelongsTo: "cats"},
			},
		}
		srv := newTestServer(store)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/cats/articles")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Articles []model.Article `json:"articles"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Articles, 1)
		assert.Equal(t, "cats", body.Articles[0].BelongsTo)
	})

	t.Run("uppercase slug is 400 and never reaches the store", func(t *testing.T) {
		store := &mockStore{}
		srv := newTestServer(store)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/Cats/articles")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, store.listCalls)
	})

	t.Run("no matching articles is 404", func(t *testing.T) {
		store := &mockStore{articles: []model.Article{}}
		srv := newTestServer(store)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/unknown/articles")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body struct {
			Msg string `json:"msg"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Page Not Found", body.Msg)
	})
}

func TestCreateArticle(t *testing.T) {
	authorID := uuid.New()

	post := func(srv *httptest.Server, payload string) *http.Response {
		resp, err := http.Post(srv.URL+"/cats/articles", "application/json", strings.NewReader(payload))
		if err != nil {
			panic(err)
		}

		return resp
	}

	t.Run("created", func(t *testing.T) {
		store := &mockStore{
			topic: &model.Topic{Slug: "cats"},
			user:  &model.User{ID: authorID, Username: "butter_bridge"},
		}
		srv := newTestServer(store)
		defer srv.Close()

		resp := post(srv, `{"title":"new","body":"text","created_by":"butter_bridge"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Article map[string]interface{} `json:"article"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "new", body.Article["title"])
		assert.Equal(t, "cats", body.Article["belongs_to"])
		assert.Equal(t, float64(0), body.Article["comment_count"])
	})

	t.Run("unknown topic is 404", func(t *testing.T) {
		store := &mockStore{getTopicErr: fmt.Errorf("topic: %w", apperr.ErrNotFound)}
		srv := newTestServer(store)
		defer srv.Close()

		resp := post(srv, `{"title":"new","body":"text","created_by":"butter_bridge"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Zero(t, store.insertCalls)
	})

	t.Run("unknown author is 400, not 404", func(t *testing.T) {
		store := &mockStore{
			topic:      &model.Topic{Slug: "cats"},
			getUserErr: fmt.Errorf("user: %w", apperr.ErrNotFound),
		}
		srv := newTestServer(store)
		defer srv.Close()

		resp := post(srv, `{"title":"new","body":"text","created_by":"ghost"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, store.insertCalls)
	})

	t.Run("missing title is 400", func(t *testing.T) {
		store := &mockStore{
			topic: &model.Topic{Slug: "cats"},
			user:  &model.User{ID: authorID},
		}
		srv := newTestServer(store)
		defer srv.Close()

		resp := post(srv, `{"body":"text","created_by":"butter_bridge"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, store.insertCalls)
	})
}
