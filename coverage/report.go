package coverage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Options configure report rendering. Both renderings derive from the same
// Result.
type Options struct {
	// OmitEmpty drops blocks with neither expected nor unexpected code
	// points.
	OmitEmpty bool
}

// WriteText renders a result as human-readable lines, one block per line,
// ordered by block start.
func WriteText(w io.Writer, res *Result, opts Options) error {
	if res.Font != "" {
		if _, err := fmt.Fprintf(w, "%s (Unicode %s)\n", res.Font, res.Version); err != nil {
			return err
		}
	}
	for _, cov := range res.Blocks {
		if opts.OmitEmpty && cov.Expected == 0 && cov.Unexpected == 0 {
			continue
		}
		_, err := fmt.Fprintf(w, "U+%06X..U+%06X  %-45s %6d assigned, %6d expected, %6d unexpected\n",
			cov.Block.Start, cov.Block.End, cov.Block.Name,
			cov.Block.Assigned, cov.Expected, cov.Unexpected)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders a result as delimited records with a header row.
func WriteCSV(w io.Writer, res *Result, opts Options) error {
	out := csv.NewWriter(w)
	header := []string{"font", "block", "start", "end", "assigned", "expected", "unexpected"}
	if err := out.Write(header); err != nil {
		return err
	}
	for _, cov := range res.Blocks {
		if opts.OmitEmpty && cov.Expected == 0 && cov.Unexpected == 0 {
			continue
		}
		record := []string{
			res.Font,
			cov.Block.Name,
			fmt.Sprintf("%04X", cov.Block.Start),
			fmt.Sprintf("%04X", cov.Block.End),
			strconv.Itoa(cov.Block.Assigned),
			strconv.Itoa(cov.Expected),
			strconv.Itoa(cov.Unexpected),
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
