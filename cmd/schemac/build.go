package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kralicky/schemac/gen/jsoncodec"
	"github.com/kralicky/schemac/gen/msgbuf"
	"github.com/kralicky/schemac/linker"
	"github.com/kralicky/schemac/options"
	"github.com/kralicky/schemac/parser"
	"github.com/kralicky/schemac/reporter"
)

func newBuildCommand(logger *slog.Logger) *cobra.Command {
	var goOutput string

	cmd := &cobra.Command{
		Use:   "build <input-path>",
		Short: "Compile a schema file into generated Go source",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := args[0]
			output := goOutput
			if output == "" {
				output = defaultOutputPath(input)
			}
			return runBuild(logger, input, output)
		},
	}
	cmd.Flags().StringVar(&goOutput, "go", "", "output path for generated Go source (default: input path with its extension replaced by .g.go)")

	return cmd
}

// defaultOutputPath replaces input's extension with ".g.go", matching
// the CLI's documented default.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".g.go"
}

func runBuild(logger *slog.Logger, input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	handler := reporter.NewHandler()

	file := parser.ParseFile(input, string(src), handler)
	if handler.HasErrors() {
		return reportAndFail(handler)
	}

	linker.Link(file, handler)
	if handler.HasErrors() {
		return reportAndFail(handler)
	}

	options.Fold(file, handler)
	if handler.HasErrors() {
		return reportAndFail(handler)
	}

	body, err := msgbuf.Generate(file)
	if err != nil {
		return fmt.Errorf("generating message buffer codec: %w", err)
	}
	body += jsoncodec.GenerateBody(file)

	if err := os.WriteFile(output, []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("compiled schema", "input", input, "output", output)
	return nil
}

func reportAndFail(handler *reporter.Handler) error {
	for _, r := range handler.Reports() {
		fmt.Fprintln(os.Stderr, r.Error())
	}
	return reporter.ErrInvalidSchema
}
