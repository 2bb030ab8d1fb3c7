package likes

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeErrorStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not owner", ErrNotTicketOwner, http.StatusForbidden},
		{"ticket missing", ErrTicketNotFound, http.StatusNotFound},
		{"wrapped ticket missing", fmt.Errorf("toggle: %w", ErrTicketNotFound), http.StatusNotFound},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, likeErrorStatus(tc.err))
		})
	}
}
