package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mugwort-rc/py2cpp/internal/pipeline"
	"github.com/mugwort-rc/py2cpp/internal/srcparse"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var usingQt bool

var rootCmd = &cobra.Command{
	Use:   "py2cpp [file]",
	Short: "Translate a dynamic-language source file to a C++ dialect",
	Long: `py2cpp translates a single source file, in the shape described by
its internal AST package, into a C++-flavored target language.

It runs the source through a fixed surface-rewrite pass (power,
floor-division, tuple literals, print statements), a visitor-based
translator, a hook layer that rewrites a handful of known idioms (math.pow,
range, tuple, None, print, docstring types), and an emitter that prints
the target tree as plain text. Unsupported constructs are emitted as
"// UNSUPPORTED AST NODE: <kind>" comments rather than aborting the run;
only a genuine invariant violation or an I/O/parse failure stops
translation (see the project error-handling notes).

Examples:
  # Translate a file to stdout
  py2cpp script.py

  # Seed the type registry with a Qt-style "Q*"-prefix pointer convention
  py2cpp --using-qt widget.py`,
	Args:          cobra.ExactArgs(1),
	RunE:          runTranspile,
	SilenceUsage:  true,
	SilenceErrors: false,
	Version:       Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().BoolVar(&usingQt, "using-qt", false, `seed the type registry so a fixed list of common "Q*" class names (QObject, QWidget, ...) resolves to pointer types; other "Q*" names are not covered (§6)`)

	// A .env file in the working directory, if present, is loaded into
	// the process environment before flags are parsed; qtSeedFromEnv
	// later reads any PY2CPP_TYPE_* variables it supplies. Absence or
	// load failure is silently ignored, matching termfx-morfx's
	// best-effort godotenv.Load() convention.
	_ = godotenv.Load()
}

func runTranspile(_ *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	module, err := srcparse.Parse(string(source))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	p := pipeline.New()
	if usingQt {
		p.Types().Seed(qtSeedBindings())
	}
	p.Types().Seed(qtSeedFromEnv())

	output, err := p.Transpile(module, path, string(source))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Println("// generate by py2cpp")
	fmt.Printf("// original source code: %s\n", path)
	fmt.Println(`#include "py2cpp/py2cpp.hpp"`)
	fmt.Println()
	fmt.Println(output)
	return nil
}
