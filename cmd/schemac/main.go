// Command schemac compiles schema files into generated Go source.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootCmd := &cobra.Command{
		Use:           "schemac",
		Short:         "Compile schema files into generated Go source",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(newBuildCommand(logger))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
