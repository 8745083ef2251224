// Package main provides the centrograph CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// envDBPath names the .env / environment variable carrying the default
// history database path.
const envDBPath = "CENTROGRAPH_DB"

func main() {
	// Best-effort .env load; flags still override anything found there.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so cobra errors (unknown flags, bad args)
		// surface here.
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "centrograph",
	Short: "Eigenvector centrality over synthetic graph topologies",
	Long: `centrograph builds a graph topology (ring, star, bipartite), optionally
dopes a node with an external bias, and runs affine power iteration to
compute eigenvector centrality scores.

Runs can be repeated over ticks, with each tick recorded into a SQLite
history database for later charting of per-node trajectories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// defaultDBPath resolves the history database path: the --db flag when
// set, otherwise the CENTROGRAPH_DB environment (or .env) entry.
func defaultDBPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return os.Getenv(envDBPath)
}

// exitWithError reports to stderr and exits with the given code.
func exitWithError(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(code)
}
