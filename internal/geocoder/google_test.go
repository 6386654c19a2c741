package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"addressbook-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoogleTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotAddress string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		gotAddress = r.URL.Query().Get("address")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotAddress
}

func TestGoogle_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expected    models.Coordinates
		expectedErr error
	}{
		{
			name:     "first result is used",
			status:   http.StatusOK,
			body:     `{"status":"OK","results":[{"geometry":{"location":{"lat":14.676,"lng":121.0437}}},{"geometry":{"location":{"lat":1,"lng":2}}}]}`,
			expected: models.Coordinates{Latitude: 14.676, Longitude: 121.0437},
		},
		{
			name:        "zero results",
			status:      http.StatusOK,
			body:        `{"status":"ZERO_RESULTS","results":[]}`,
			expectedErr: ErrNoMatch,
		},
		{
			name:        "request denied",
			status:      http.StatusOK,
			body:        `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`,
			expectedErr: ErrProvider,
		},
		{
			name:        "malformed response",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectedErr: ErrProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, gotAddress := newGoogleTestServer(t, tt.status, tt.body)
			g, err := NewGoogle("AIza-test-key", srv.URL, srv.Client())
			require.NoError(t, err)

			coords, err := g.Resolve(context.Background(), "1 Narra St, Quezon City, 1100, Philippines")

			assert.Equal(t, "1 Narra St, Quezon City, 1100, Philippines", *gotAddress)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, coords)
		})
	}
}

func TestGoogle_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	g, err := NewGoogle("AIza-test-key", url, nil)
	require.NoError(t, err)

	_, err = g.Resolve(context.Background(), "anywhere")
	assert.ErrorIs(t, err, ErrProvider)
}
