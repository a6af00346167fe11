package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/newsapi/internal/apperr"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "up", want: 1},
		{raw: "down", want: -1},
		{raw: "Up", wantErr: true},
		{raw: "3", wantErr: true},
		{raw: "upvote", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("vote="+tt.raw, func(t *testing.T) {
			got, err := Delta(tt.raw)

			if tt.wantErr {
				require.ErrorIs(t, err, apperr.ErrBadRequest)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
