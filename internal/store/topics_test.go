package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/ncnews/newsapi/internal/apperr"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	return New(mock), mock
}

func expectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListTopics(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantLen int
		wantErr bool
	}{
		{
			name: "returns topics ordered by slug",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"slug", "description"}).
					AddRow("cats", "Not dogs").
					AddRow("coding", "Code is love, code is life")
				mock.ExpectQuery(`SELECT slug, description FROM topics`).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "returns empty slice when no topics",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"slug", "description"})
				mock.ExpectQuery(`SELECT slug, description FROM topics`).
					WillReturnRows(rows)
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tt.setup(mock)

			topics, err := s.ListTopics(context.Background())

			if (err != nil) != tt.wantErr {
				t.Fatalf("ListTopics() error = %v, wantErr %v", err, tt.wantErr)
			}
			if topics == nil {
				t.Fatal("ListTopics() returned nil slice")
			}
			if len(topics) != tt.wantLen {
				t.Errorf("ListTopics() returned %d topics, want %d", len(topics), tt.wantLen)
			}

			expectationsWereMet(t, mock)
		})
	}
}

func TestGetTopic(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			slug: "cats",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"slug", "description"}).
					AddRow("cats", "Not dogs")
				mock.ExpectQuery(`SELECT slug, description FROM topics WHERE`).
					WithArgs("cats").
					WillReturnRows(rows)
			},
		},
		{
			name: "unknown slug maps to not found",
			slug: "dogs",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT slug, description FROM topics WHERE`).
					WithArgs("dogs").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStore(t)
			tt.setup(mock)

			topic, err := s.GetTopic(context.Background(), tt.slug)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetTopic() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("GetTopic() error = %v", err)
				}
				if topic.Slug != tt.slug {
					t.Errorf("GetTopic() slug = %q, want %q", topic.Slug, tt.slug)
				}
			}

			expectationsWereMet(t, mock)
		})
	}
}
