// Package vote parses the vote query parameter shared by the article and
// comment PATCH endpoints.
package vote

import (
	"fmt"

	"github.com/ncnews/newsapi/internal/apperr"
)

// Delta maps the raw vote query value to its adjustment. An absent value is
// a no-op (delta 0); "up" and "down" adjust by one; anything else is
// rejected before the store is touched.
func Delta(raw string) (int, error) {
	switch raw {
	case "":
		return 0, nil
	case "up":
		return 1, nil
	case "down":
		return -1, nil
	default:
		return 0, fmt.Errorf("vote %q: %w", raw, apperr.ErrBadRequest)
	}
}
