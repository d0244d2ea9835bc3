package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/coverage"
	"github.com/npillmayer/unicover/fontscan"
	"github.com/npillmayer/unicover/refdata"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"
)

var shellFlags = struct {
	version        *string
	requireOutline *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "shell font",
		Short:   "Inspect a font's Unicode coverage interactively",
		Example: `  ucover shell --version 15.1.0 SomeFont.ttf`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShell,
	}
	shellFlags.version = cmd.Flags().String("version", "", "Unicode version to inspect against (required)")
	shellFlags.requireOutline = cmd.Flags().Bool("require-outline", false,
		"count only code points whose glyph has actual glyph data")
	cmd.MarkFlagRequired("version")
	rootCmd.AddCommand(cmd)
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	ref  *refdata.ReferenceData
	font fontscan.FontBits
	res  *coverage.Result
}

func runShell(cmd *cobra.Command, args []string) error {
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
	ref, err := store.Load(*shellFlags.version)
	if err != nil {
		return err
	}
	fonts, err := fontscan.ScanFile(args[0], fontscan.Options{RequireOutline: *shellFlags.requireOutline})
	if err != nil {
		return err
	}
	if len(fonts) == 0 {
		return unicover.Errorf(unicover.KindNoUsableInput, "no usable font in %s", args[0])
	}

	repl, err := readline.New("ucover > ")
	if err != nil {
		return err
	}
	intp := &Intp{repl: repl, ref: ref, font: fonts[0]}
	intp.res = coverage.Compute(intp.font.Bits, ref)
	intp.res.Font = intp.font.Name
	pterm.Info.Printf("Welcome to %s (Unicode %s)\n", intp.font.Name, ref.Version)
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
}

func (intp *Intp) execute(line string) (quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "q":
		return true
	case "blocks":
		for _, cov := range intp.res.Blocks {
			if cov.Expected == 0 && cov.Unexpected == 0 {
				continue
			}
			intp.printBlock(cov)
		}
	case "block":
		for _, cov := range intp.res.Blocks {
			if strings.EqualFold(cov.Block.Name, arg) {
				intp.printBlock(cov)
				return false
			}
		}
		pterm.Error.Printf("no block named %q\n", arg)
	case "char":
		intp.describeChar(arg)
	case "total":
		expected, unexpected := 0, 0
		for _, cov := range intp.res.Blocks {
			expected += cov.Expected
			unexpected += cov.Unexpected
		}
		pterm.Printf("%s maps %d assigned and %d unassigned code points (of %d assigned in Unicode %s)\n",
			intp.font.Name, expected, unexpected, intp.ref.AssignedTotal, intp.ref.Version)
	default:
		pterm.Println("commands: blocks | block <name> | char <c|U+XXXX> | total | quit")
	}
	return false
}

func (intp *Intp) printBlock(cov coverage.BlockCoverage) {
	pterm.Printf("U+%06X..U+%06X  %-45s %6d assigned, %6d expected, %6d unexpected\n",
		cov.Block.Start, cov.Block.End, cov.Block.Name,
		cov.Block.Assigned, cov.Expected, cov.Unexpected)
}

func (intp *Intp) describeChar(arg string) {
	c, err := parseChar(arg)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	name := runenames.Name(c)
	assigned := c < unicover.MaxCodepoint && intp.ref.Assigned.Test(c)
	mapped := intp.font.Bits.Test(c)
	pterm.Printf("U+%04X  %s\n", c, name)
	pterm.Printf("        assigned=%v  mapped by font=%v\n", assigned, mapped)
}

// parseChar accepts a literal character, a U+XXXX form, or bare hex.
func parseChar(arg string) (rune, error) {
	if arg == "" {
		return 0, fmt.Errorf("char: missing argument")
	}
	runes := []rune(arg)
	if len(runes) == 1 {
		return runes[0], nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(arg, "U+"), "u+")
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("char: cannot parse %q", arg)
	}
	return rune(n), nil
}
