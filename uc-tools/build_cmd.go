package main

import (
	"github.com/npillmayer/unicover/refdata"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var buildFlags = struct {
	ucdDir  *string
	version *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Compile UCD files into a reference artifact for one Unicode version",
		Example: `  ucover build --ucd /usr/share/unicode --version 15.1.0`,
		Args:    cobra.NoArgs,
		RunE:    runBuild,
	}
	buildFlags.ucdDir = cmd.Flags().String("ucd", ".", "directory holding the UCD source files")
	buildFlags.version = cmd.Flags().String("version", "", "Unicode version to build (required)")
	cmd.MarkFlagRequired("version")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
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
	ref, err := refdata.Build(*buildFlags.ucdDir, *buildFlags.version)
	if err != nil {
		return err
	}
	if err := store.Save(ref); err != nil {
		return err
	}
	pterm.Info.Printf("Unicode %s: %d assigned code points in %d blocks\n",
		ref.Version, ref.AssignedTotal, len(ref.Blocks))
	return nil
}
