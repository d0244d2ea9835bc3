package main

import (
	"github.com/npillmayer/unicover/refdata"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List installed Unicode reference versions",
		Args:  cobra.NoArgs,
		RunE:  runVersions,
	}
	rootCmd.AddCommand(cmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
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
	versions, err := store.Versions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		pterm.Info.Println("no reference data installed; run `ucover build` first")
		return nil
	}
	for _, version := range versions {
		pterm.Printf("Unicode %s\n", version)
	}
	return nil
}
