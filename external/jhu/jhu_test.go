package jhu

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

func TestHTTPSourceLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/time_series_covid19_confirmed_global.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(globalConfirmedCSV))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	table, err := src.Load(schema.ScopeGlobal, schema.Confirmed)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)

	// Anything but 200 aborts the run.
	_, err = src.Load(schema.ScopeGlobal, schema.Deaths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestHTTPSourceUnknownDataset(t *testing.T) {
	src := NewHTTPSource("http://127.0.0.1:1", time.Second)
	_, err := src.Load(schema.Scope("nope"), schema.Confirmed)
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestDirSourceLoad(t *testing.T) {
	dir := t.TempDir()
	// Snapshot files use the upstream names verbatim.
	p := filepath.Join(dir, "time_series_covid19_confirmed_US.csv")
	require.NoError(t, os.WriteFile(p, []byte(usConfirmedCSV), 0644))

	src := DirSource{Dir: dir}
	table, err := src.Load(schema.ScopeUS, schema.Confirmed)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 2)

	_, err = src.Load(schema.ScopeUS, schema.Deaths)
	assert.Error(t, err) // no deaths snapshot in the directory
}
