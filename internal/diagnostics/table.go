package diagnostics

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	xmath "github.com/drakos74/free-predict/internal/math"
	"github.com/drakos74/free-predict/internal/prediction"
)

// Table writes one row per prediction of the set, in the order of the set.
func Table(w io.Writer, s *prediction.Set, precision int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"coords", "value", "samples", "last", "avg", "var"})
	table.SetAutoFormatHeaders(false)
	for _, p := range s.Predictions() {
		table.Append([]string{
			p.Coords().String(),
			xmath.Format(p.Value(), precision),
			strconv.Itoa(p.NSamples() + 1),
			xmath.Format(p.Last(), precision),
			xmath.Format(p.Avg(), precision),
			xmath.Format(p.Var(), precision),
		})
	}
	table.Render()
}
