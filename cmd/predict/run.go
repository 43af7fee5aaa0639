package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/free-predict/infra/config"
	"github.com/drakos74/free-predict/internal/buffer"
	"github.com/drakos74/free-predict/internal/diagnostics"
	xmath "github.com/drakos74/free-predict/internal/math"
	"github.com/drakos74/free-predict/internal/metrics"
	"github.com/drakos74/free-predict/internal/prediction"
)

const (
	maxLag = 10
	// trend is the number of rounds the rmse trend is computed over.
	trend = 10
)

// groundTruth creates a rows x cols matrix where roughly density of the cells
// hold a value in [1,5), the rest are unknown.
func groundTruth(cfg *config.Predict, src rand.Source) *mat.Dense {
	known := distuv.Uniform{Min: 0, Max: 1, Src: src}
	value := distuv.Uniform{Min: 1, Max: 5, Src: src}
	m := mat.NewDense(cfg.Rows, cfg.Cols, nil)
	for i := 0; i < cfg.Rows; i++ {
		for j := 0; j < cfg.Cols; j++ {
			if known.Rand() < cfg.Density {
				m.Set(i, j, value.Rand())
			}
		}
	}
	return m
}

// run feeds rounds of noisy samples around the ground truth into a prediction set.
func run(ctx context.Context, cfg *config.Predict, out io.Writer) error {

	registry := prometheus.NewRegistry()
	observer, err := metrics.New(registry)
	if err != nil {
		return err
	}

	ctx, cnl := context.WithCancel(ctx)
	served := make(chan struct{})
	// NOTE : the metrics server lives only as long as the run
	defer func() {
		cnl()
		<-served
	}()
	go func() {
		defer close(served)
		if cfg.MetricsAddr == "" {
			return
		}
		if err := metrics.Serve(ctx, cfg.MetricsAddr, registry); err != nil {
			log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("could not serve metrics")
		}
	}()

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	set, err := prediction.FromDense(groundTruth(cfg, src))
	if err != nil {
		return fmt.Errorf("could not create predictions: %w", err)
	}
	if set.Len() == 0 {
		return fmt.Errorf("no known entries for %dx%d with density %v", cfg.Rows, cfg.Cols, cfg.Density)
	}
	observer.Track(set.ID(), set.Len())

	noise := distuv.Normal{Mu: 0, Sigma: cfg.Noise, Src: src}
	truth := set.Values()
	samples := make([]float64, set.Len())
	errs := buffer.NewRing(trend)
	for r := 0; r < cfg.Rounds; r++ {
		for i, v := range truth {
			samples[i] = v + noise.Rand()
		}
		if err := set.AddParallel(ctx, samples, cfg.Workers); err != nil {
			return fmt.Errorf("round %d: %w", r, err)
		}
		rmse := set.RMSE()
		observer.Round(set.ID(), len(samples), rmse)
		errs.Push(rmse)
		// NOTE : a slope close to zero means more rounds will not improve the estimate much
		slope, err := xmath.Slope(errs.Get())
		if err != nil {
			slope = math.NaN()
		}
		log.Info().
			Str("run", set.ID()).
			Int("round", r).
			Float64("rmse", rmse).
			Float64("trend", slope).
			Msg("round completed")
	}

	if err := set.Sort(); err != nil {
		return err
	}
	diagnostics.Table(out, set, cfg.Precision)

	first := set.At(0)
	report := diagnostics.Analyze(first, maxLag)
	log.Info().
		Str("run", set.ID()).
		Str("coords", report.Coords.String()).
		Int("count", report.Count).
		Float64("mean", report.Mean).
		Float64("stdev", report.StDev).
		Float64("range", report.Range).
		Float64("ess", report.ESS).
		Float64("drift", report.Drift).
		Msg("sample diagnostics")

	if cfg.Plot != "" {
		f, err := os.Create(cfg.Plot)
		if err != nil {
			return fmt.Errorf("could not create plot file: %w", err)
		}
		if err := writePlot(f, first, cfg.Bins); err != nil {
			return fmt.Errorf("could not plot %s to %s: %w", first.Coords(), cfg.Plot, err)
		}
	}
	return nil
}

// writePlot writes the histogram of the prediction samples and closes the writer.
func writePlot(w io.WriteCloser, p *prediction.Prediction, bins int) error {
	if err := diagnostics.Histogram(w, p, bins); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not close plot: %w", err)
	}
	return nil
}
