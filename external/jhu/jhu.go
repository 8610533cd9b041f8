// Package jhu loads the four JHU CSSE COVID-19 time-series tables
// (US/global x confirmed/deaths), either from the upstream repository or
// from a local snapshot directory.
package jhu

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kekatzmann/jhu-covid19-analysis/schema"
)

const logPrefix = "jhu"

// DefaultBaseURL is the raw-file root of the JHU CSSE time-series data.
const DefaultBaseURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series"

var ErrUnknownDataset = fmt.Errorf("unknown dataset")

var fileNames = map[schema.Scope]map[schema.CountKind]string{
	schema.ScopeUS: {
		schema.Confirmed: "time_series_covid19_confirmed_US.csv",
		schema.Deaths:    "time_series_covid19_deaths_US.csv",
	},
	schema.ScopeGlobal: {
		schema.Confirmed: "time_series_covid19_confirmed_global.csv",
		schema.Deaths:    "time_series_covid19_deaths_global.csv",
	},
}

// Source supplies one of the four raw tables per call.
type Source interface {
	Load(scope schema.Scope, kind schema.CountKind) (*schema.WideTable, error)
}

// HTTPSource downloads tables from the JHU repository. A failed download
// aborts the caller's run; there is no retry and no caching.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns an HTTPSource against baseURL, or against the
// JHU repository when baseURL is empty.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Load(scope schema.Scope, kind schema.CountKind) (*schema.WideTable, error) {
	name, ok := fileNames[scope][kind]
	if !ok {
		return nil, ErrUnknownDataset
	}
	url := s.BaseURL + "/" + name

	log.WithFields(log.Fields{"prefix": logPrefix, "url": url}).Info("download dataset")
	resp, err := s.Client.Get(url)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("download dataset")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: unexpected status %s", name, resp.Status)
	}
	return Parse(resp.Body, scope, kind)
}

// DirSource reads snapshot files from one directory, named as in the
// JHU repository.
type DirSource struct {
	Dir string
}

func (s DirSource) Load(scope schema.Scope, kind schema.CountKind) (*schema.WideTable, error) {
	name, ok := fileNames[scope][kind]
	if !ok {
		return nil, ErrUnknownDataset
	}
	p := filepath.Join(s.Dir, name)

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.WithFields(log.Fields{"prefix": logPrefix, "path": p}).Debug("read dataset snapshot")
	return Parse(f, scope, kind)
}
