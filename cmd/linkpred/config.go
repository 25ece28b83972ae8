package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/aggregate"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource/split"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource/store/cdb"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource/store/file"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource/store/memory"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/predictor"
)

const (
	trainPartition   = "train"
	heldOutPartition = "held-out"
)

// fileConfig is the layout of the optional YAML run configuration.
// Command line flags take precedence over values read from the file.
type fileConfig struct {
	Limit              int                `yaml:"limit"`
	TopK               int                `yaml:"top_k"`
	Cutoffs            []int              `yaml:"cutoffs"`
	ComputeWorkers     int                `yaml:"compute_workers"`
	ChunkSize          int                `yaml:"chunk_size"`
	AggregationWeights map[string]float64 `yaml:"aggregation_weights"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load run config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	fc := new(fileConfig)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load run config %s: %w", path, err)
	}

	return fc, nil
}

// apply copies every value of the file config into cfg unless the matching
// flag was set explicitly.
func (fc *fileConfig) apply(cfg *predictor.Config, setFlags map[string]bool) error {
	if fc.Limit != 0 && !setFlags["limit"] {
		cfg.Limit = fc.Limit
	}

	if fc.TopK != 0 && !setFlags["top-k"] {
		cfg.TopK = fc.TopK
	}

	if len(fc.Cutoffs) != 0 {
		cfg.Cutoffs = fc.Cutoffs
	}

	if fc.ComputeWorkers != 0 && !setFlags["workers"] {
		cfg.NumOfComputeWorkers = fc.ComputeWorkers
	}

	if fc.ChunkSize != 0 && !setFlags["chunk-size"] {
		cfg.ChunkSize = fc.ChunkSize
	}

	if len(fc.AggregationWeights) != 0 {
		w, err := aggregate.ParseWeights(fc.AggregationWeights)
		if err != nil {
			return err
		}
		cfg.Weights = w
	}

	return nil
}

// openSource returns an edge source for the provided URI along with a
// closer for any resources it holds, or a nil closer if there are none.
// Supported URIs:
//
//	file:///path/to/edges.txt
//	postgresql://user@host:26257/db?sslmode=disable#partition
func openSource(uri string, logger *logrus.Entry) (edgesource.Source, io.Closer, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse edge source URI: %w", err)
	}

	switch u.Scheme {
	case "file":
		path := strings.TrimPrefix(uri, "file://")
		logger.WithField("path", path).Info("using edge list file source")

		return file.NewSource(path), nil, nil
	case "postgresql":
		if u.Fragment == "" {
			return nil, nil, fmt.Errorf("edge source URI %q does not name a partition (#partition)", uri)
		}

		partition := u.Fragment
		u.Fragment = ""

		store, err := cdb.NewCockroachDBEdgeStore(u.String())
		if err != nil {
			return nil, nil, err
		}
		logger.WithField("partition", partition).Info("using CDB edge store")

		return store.Partition(partition), store, nil
	default:
		return nil, nil, fmt.Errorf("unsupported edge source URI scheme: %q", u.Scheme)
	}
}

// splitSource withholds a fraction of the edges of src and returns sources
// for the remaining training edges and for the withheld edges.
func splitSource(
	src edgesource.Source, testFraction float64, seed int64,
) (edgesource.Source, edgesource.Source, error) {

	edges, err := edgesource.Collect(src)
	if err != nil {
		return nil, nil, err
	}

	train, heldOut, err := split.Split(edges, testFraction, seed)
	if err != nil {
		return nil, nil, err
	}

	store := memory.NewEdgeStore()
	for _, e := range train {
		if err := store.InsertEdge(trainPartition, e); err != nil {
			return nil, nil, err
		}
	}

	for _, e := range heldOut {
		if err := store.InsertEdge(heldOutPartition, e); err != nil {
			return nil, nil, err
		}
	}

	return store.Partition(trainPartition), store.Partition(heldOutPartition), nil
}
