package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/predictor"
)

const (
	appName = "linkpred"
	appSHA  = "compiled-and-deployed-at"
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"SHA":  appSHA,
		"host": host,
	})

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	// Cancel the run on SIGINT / SIGHUP.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGHUP)

		select {
		case s := <-signalChan:
			logger.WithField("signal", s.String()).Info("shutting down due to os signal")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		cancelFn()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *logrus.Entry) error {
	var (
		cfg          predictor.Config
		testFraction float64
		seed         int64
	)

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)

	trainURI := fs.String(
		"train-uri", "",
		"URI of the training edge source."+
			" [supported URI's: file:///path/edges.txt, postgresql://user@host:26257/db?sslmode=disable#partition]",
	)
	heldOutURI := fs.String(
		"held-out-uri", "",
		"URI of the held-out edge source. If empty, the training source is split using -test-fraction",
	)
	fs.Float64Var(
		&testFraction, "test-fraction", 0.1,
		"Fraction of the training edges withheld for evaluation when -held-out-uri is empty",
	)
	fs.Int64Var(&seed, "seed", 42, "Seed for the train / held-out split")
	fs.IntVar(&cfg.Limit, "limit", 10000, "Maximum number of candidate pairs to score")
	fs.IntVar(&cfg.TopK, "top-k", 100, "Cutoff for the precision evaluation")
	fs.IntVar(
		&cfg.NumOfComputeWorkers, "workers", runtime.NumCPU(),
		"Number of workers for scoring candidate pairs.[defaults to number of CPU's]",
	)
	fs.IntVar(&cfg.ChunkSize, "chunk-size", 1024, "Number of candidate pairs scored per work unit")
	configPath := fs.String("config", "", "Optional YAML run configuration file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath != "" {
		fc, err := loadFileConfig(*configPath)
		if err != nil {
			return err
		}

		setFlags := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

		if err := fc.apply(&cfg, setFlags); err != nil {
			return err
		}
	}

	if *trainURI == "" {
		return fmt.Errorf("training edge source URI must be specified with --train-uri")
	}

	trainSrc, closer, err := openSource(*trainURI, logger)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	if *heldOutURI != "" {
		heldOutSrc, closer, err := openSource(*heldOutURI, logger)
		if err != nil {
			return err
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}

		cfg.TrainSource, cfg.HeldOutSource = trainSrc, heldOutSrc
	} else {
		logger.WithFields(logrus.Fields{
			"test_fraction": testFraction,
			"seed":          seed,
		}).Info("splitting training edges into train and held-out sets")

		if cfg.TrainSource, cfg.HeldOutSource, err = splitSource(trainSrc, testFraction, seed); err != nil {
			return err
		}
	}

	cfg.Logger = logger.WithField("service", "link-predictor")

	p, err := predictor.New(cfg)
	if err != nil {
		return err
	}

	report, err := p.Run(ctx)
	if err != nil {
		return err
	}

	return writeSummary(out, report, cfg.TopK)
}

// summary is the YAML document printed at the end of a run.
type summary struct {
	RunID      string             `yaml:"run_id"`
	Nodes      int                `yaml:"nodes"`
	Edges      int                `yaml:"edges"`
	HeldOut    int                `yaml:"held_out_edges"`
	Candidates int                `yaml:"candidates"`
	TopK       int                `yaml:"top_k"`
	Precision  map[string]float64 `yaml:"precision"`
	Curves     map[string][]point `yaml:"precision_curves,omitempty"`
	Top        []rankedPair       `yaml:"top"`
	Timings    map[string]string  `yaml:"timings"`
}

type point struct {
	K         int     `yaml:"k"`
	Precision float64 `yaml:"precision"`
}

type rankedPair struct {
	U     uint64  `yaml:"u"`
	V     uint64  `yaml:"v"`
	Score float64 `yaml:"score"`
}

func writeSummary(out io.Writer, report *predictor.Report, topK int) error {
	s := summary{
		RunID:      report.RunID.String(),
		Nodes:      report.NumOfNodes,
		Edges:      report.NumOfEdges,
		HeldOut:    report.NumOfHeldOut,
		Candidates: report.NumOfCandidates,
		TopK:       topK,
		Precision:  make(map[string]float64, len(report.Precision)),
		Timings: map[string]string{
			"graph_load":  report.Timings.GraphLoad.String(),
			"enumeration": report.Timings.Enumeration.String(),
			"scoring":     report.Timings.Scoring.String(),
			"aggregation": report.Timings.Aggregation.String(),
			"evaluation":  report.Timings.Evaluation.String(),
			"total":       report.Timings.Total.String(),
		},
	}

	for m, res := range report.Precision {
		s.Precision[m.String()] = res.Precision
	}

	if len(report.Curves) != 0 {
		s.Curves = make(map[string][]point, len(report.Curves))
		for m, curve := range report.Curves {
			points := make([]point, len(curve))
			for i, res := range curve {
				points[i] = point{K: res.K, Precision: res.Precision}
			}
			sort.Slice(points, func(i, j int) bool { return points[i].K < points[j].K })
			s.Curves[m.String()] = points
		}
	}

	for _, r := range report.Ranked.Top(topK) {
		s.Top = append(s.Top, rankedPair{U: uint64(r.Pair.U), V: uint64(r.Pair.V), Score: r.Score})
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}

	return enc.Close()
}
