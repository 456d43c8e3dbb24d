package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"No error", nil, http.StatusOK},
		{"Not found", ErrEventNotFound, http.StatusNotFound},
		{"Wrapped not found", fmt.Errorf("load: %w", ErrUserNotFound), http.StatusNotFound},
		{"Invalid payload", fmt.Errorf("%w: too long", ErrInvalidPayload), http.StatusBadRequest},
		{"Token", ErrInvalidToken, http.StatusUnauthorized},
		{"Phone binding", ErrPhoneNotVerified, http.StatusForbidden},
		{"Conflict", ErrThreadExists, http.StatusConflict},
		{"Unknown", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
