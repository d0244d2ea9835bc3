package main

import (
	"os"

	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/bitvec"
	"github.com/npillmayer/unicover/coverage"
	"github.com/npillmayer/unicover/fontscan"
	"github.com/npillmayer/unicover/refdata"
	"github.com/spf13/cobra"
)

var reportFlags = struct {
	version        *string
	csv            *bool
	merge          *bool
	requireOutline *bool
	allBlocks      *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "report font...",
		Short:   "Report per-block Unicode coverage of one or more fonts",
		Example: `  ucover report --version 15.1.0 --merge fonts/*.ttf`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runReport,
	}
	reportFlags.version = cmd.Flags().String("version", "", "Unicode version to report against (required)")
	reportFlags.csv = cmd.Flags().Bool("csv", false, "emit delimited records instead of text lines")
	reportFlags.merge = cmd.Flags().Bool("merge", false, "union all fonts into one combined report")
	reportFlags.requireOutline = cmd.Flags().Bool("require-outline", false,
		"count only code points whose glyph has actual glyph data")
	reportFlags.allBlocks = cmd.Flags().Bool("all-blocks", false,
		"include blocks the font does not touch at all")
	cmd.MarkFlagRequired("version")
	rootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := setTraceLevel(); err != nil {
		return err
	}
	dir, err := dataDir()
	if err != nil {
		return err
	}
	store, err := refdata.NewStore(dir)
	if err != nil {
		return err
	}
	ref, err := store.Load(*reportFlags.version)
	if err != nil {
		return err
	}

	opts := fontscan.Options{RequireOutline: *reportFlags.requireOutline}
	fonts, skipped := fontscan.ScanAll(args, opts)
	for _, skip := range skipped {
		tracer().Errorf("skipped %s: %v", skip.Path, skip.Err)
	}
	if len(fonts) == 0 {
		return unicover.Errorf(unicover.KindNoUsableInput, "no usable fonts among %d inputs", len(args))
	}

	renderOpts := coverage.Options{OmitEmpty: !*reportFlags.allBlocks}
	if *reportFlags.merge {
		sets := make([]*bitvec.Vector, len(fonts))
		for i, fb := range fonts {
			sets[i] = fb.Bits
		}
		combined, err := coverage.Union(sets)
		if err != nil {
			return err
		}
		res := coverage.Compute(combined, ref)
		res.Font = "all fonts"
		if err := render(res, renderOpts); err != nil {
			return err
		}
	} else {
		for _, fb := range fonts {
			res := coverage.Compute(fb.Bits, ref)
			res.Font = fb.Name
			if err := render(res, renderOpts); err != nil {
				return err
			}
		}
	}

	if len(skipped) > 0 {
		// partial success carries its own exit status
		os.Exit(unicover.ExitPartial)
	}
	return nil
}

func render(res *coverage.Result, opts coverage.Options) error {
	if *reportFlags.csv {
		return coverage.WriteCSV(os.Stdout, res, opts)
	}
	return coverage.WriteText(os.Stdout, res, opts)
}
