// ucover reports Unicode block coverage of OpenType fonts.
//
// The tool has two phases which may run in different invocations, possibly
// far apart in time: `ucover build` compiles UCD source files of one
// Unicode version into a write-once reference artifact, and
// `ucover report` tallies font cmap coverage against an installed
// artifact.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/unicover"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'unicover.fonts'
func tracer() tracing.Trace {
	return tracing.Select("unicover.fonts")
}

var rootCmd = &cobra.Command{
	Use:   "ucover",
	Short: "Report Unicode block coverage of OpenType fonts",
	Long: `ucover provides two features:
- Compiles Unicode Character Database files into a per-version reference
  artifact of assigned code points and named blocks.
- Reports, per Unicode block, how many code points a font maps, split into
  assigned ("expected") and unassigned ("unexpected") ones.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = struct {
	trace *string
	data  *string
}{}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Info", "Trace level [Debug|Info|Error]")
	rootFlags.data = rootCmd.PersistentFlags().String("data", "", "reference data directory (default: user config dir)")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.unicover.ucd":   "Info",
		"trace.unicover.fonts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(unicover.ExitCode(err))
	}
}

// setTraceLevel applies the --trace flag to both trace keys.
func setTraceLevel() error {
	for _, key := range []string{"unicover.ucd", "unicover.fonts"} {
		switch *rootFlags.trace {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level: %s", *rootFlags.trace)
		}
	}
	return nil
}

// dataDir resolves the reference data directory from the --data flag,
// defaulting to a `unicover` directory below the user's config directory.
func dataDir() (string, error) {
	if *rootFlags.data != "" {
		return *rootFlags.data, nil
	}
	confdir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(confdir, "unicover"), nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
