package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"advclock/internal/clock"
)

// Table writes one row per precision unit, finest first, expressing the duration in that unit.
func Table(w io.Writer, d time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header("Unit", "Value")

	for _, precision := range clock.Precisions() {
		if err := table.Append([]string{precision.String(), Format(d, precision)}); err != nil {
			return fmt.Errorf("report: error appending row: unit=%s err=%v", precision, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("report: error rendering table: err=%v", err)
	}

	return nil
}

// Single writes the duration expressed in one precision unit, followed by the unit name.
func Single(w io.Writer, d time.Duration, precision clock.Precision) error {
	_, err := fmt.Fprintf(w, "%s %s\n", Format(d, precision), precision)
	return err
}

// Format renders a duration in the specified precision. Nanoseconds are rendered as an exact
// integer count; other units in the shortest float representation.
func Format(d time.Duration, precision clock.Precision) string {
	if precision == clock.Nanoseconds || !precision.Valid() {
		return strconv.FormatInt(clock.ConvertAs[int64](d, precision), 10)
	}

	return strconv.FormatFloat(clock.Convert(d, precision), 'g', -1, 64)
}
