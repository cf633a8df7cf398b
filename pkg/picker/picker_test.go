package picker

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"picker.punishwheel.com/pkg/opensheet"
	"picker.punishwheel.com/pkg/sources"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func withSheetServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	oldBase := opensheet.BaseURL
	opensheet.BaseURL = srv.URL
	t.Cleanup(func() { opensheet.BaseURL = oldBase })
}

func TestNewPicker_RequiresFallback(t *testing.T) {
	_, err := NewPicker(sources.Config{Provider: "opensheet"}, testLogger())
	require.Error(t, err)
}

func TestPicker_FallbackCycle(t *testing.T) {
	// Remote source is unreachable: every request fails.
	withSheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	p, err := NewPicker(sources.Config{
		Provider: "opensheet",
		SheetID:  "sheet-1",
		TabName:  "Tab",
		Fallback: []string{"A", "B", "C"},
	}, testLogger())
	require.NoError(t, err)

	seen := make(map[string]int)
	for i := 0; i < 3; i++ {
		draw, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, "fallback", draw.Source)
		assert.Equal(t, int64(1), draw.Cycle)
		seen[draw.Text]++
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, seen,
		"three draws cover the fallback list with no repeats")

	// Fourth draw starts a new pass over the same three.
	draw, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2), draw.Cycle)
	assert.Contains(t, seen, draw.Text)
}

func TestPicker_RemoteHappyPath(t *testing.T) {
	withSheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Punishment":"Sing"},{"Punishment":" Dance "}]`))
	})

	p, err := NewPicker(sources.Config{
		Provider: "opensheet",
		SheetID:  "sheet-1",
		TabName:  "Tab",
		Fallback: []string{"unused"},
	}, testLogger())
	require.NoError(t, err)

	seen := make(map[string]int)
	for i := 0; i < 2; i++ {
		draw, err := p.Next()
		require.NoError(t, err)
		assert.Equal(t, "opensheet", draw.Source)
		seen[draw.Text]++
	}
	assert.Equal(t, map[string]int{"Sing": 1, "Dance": 1}, seen)
}

func TestPicker_RecoversWhenRemoteComesBack(t *testing.T) {
	healthy := false
	withSheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"Text":"X"}]`))
	})

	p, err := NewPicker(sources.Config{
		Provider: "opensheet",
		SheetID:  "sheet-1",
		TabName:  "Tab",
		Fallback: []string{"A"},
	}, testLogger())
	require.NoError(t, err)

	draw, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "fallback", draw.Source)
	assert.Equal(t, "A", draw.Text)

	// Remote heals; the exhausted sampler rebuilds from fresh candidates.
	healthy = true
	draw, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "opensheet", draw.Source)
	assert.Equal(t, "X", draw.Text)
}
