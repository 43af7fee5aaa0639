package diagnostics

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/drakos74/free-predict/internal/prediction"
)

// Histogram writes a png histogram of the samples of the prediction.
// NaN and infinite samples are left out.
func Histogram(w io.Writer, p *prediction.Prediction, bins int) error {
	values := make(plotter.Values, 0, p.History().Len())
	for _, v := range p.Samples() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return fmt.Errorf("%s: %w", p.Coords(), ErrNoSamples)
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("samples %s", p.Coords())
	plt.X.Label.Text = "prediction"
	plt.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("could not create histogram: %w", err)
	}
	plt.Add(h)

	wt, err := plt.WriterTo(4*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("could not render histogram: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
