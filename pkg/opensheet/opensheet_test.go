package opensheet

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oldBase := BaseURL
	BaseURL = srv.URL
	t.Cleanup(func() { BaseURL = oldBase })

	return srv
}

func TestGetRows_WellFormed(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheet-1/Tab%20One", r.URL.EscapedPath(),
			"tab name must be percent-encoded into the path")
		w.Write([]byte(`[{"Text":"Sing"},{"Text":" Dance "},{"Text":""}]`))
	})

	rows, err := GetRows("sheet-1", "Tab One")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first, err := FirstField(rows[0])
	require.NoError(t, err)
	assert.Equal(t, "Sing", first)

	second, err := FirstField(rows[1])
	require.NoError(t, err)
	assert.Equal(t, " Dance ", second, "rows come back untrimmed")
}

func TestGetRows_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "non_200_status",
			status: http.StatusInternalServerError,
			body:   "boom",
		},
		{
			name:   "not_an_array",
			status: http.StatusOK,
			body:   `{"error":"tab not found"}`,
		},
		{
			name:   "empty_array",
			status: http.StatusOK,
			body:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rows, err := GetRows("sheet-1", "Tab")
			require.Error(t, err)
			assert.Nil(t, rows)
		})
	}
}

func TestGetRows_SingleAttempt(t *testing.T) {
	var hits int32
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := GetRows("sheet-1", "Tab")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "exactly one request per call, no retries")
}

func TestFirstField(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		want    string
		wantErr bool
	}{
		{
			name: "single_column",
			row:  `{"Text":"Sing"}`,
			want: "Sing",
		},
		{
			name: "first_of_many_columns",
			row:  `{"Punishment":"Dance","Severity":"mild"}`,
			want: "Dance",
		},
		{
			name:    "not_an_object",
			row:     `["Sing"]`,
			wantErr: true,
		},
		{
			name:    "no_columns",
			row:     `{}`,
			wantErr: true,
		},
		{
			name:    "first_column_not_text",
			row:     `{"Count":3}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstField(Row(tt.row))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
