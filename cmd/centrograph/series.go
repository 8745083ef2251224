package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ostrov/centrograph/history"
)

var (
	seriesDB   string
	seriesYAML bool
)

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().StringVar(&seriesDB, "db", "", "History database path (or CENTROGRAPH_DB)")
	seriesCmd.Flags().BoolVar(&seriesYAML, "yaml", false, "Output YAML instead of JSON")
}

var seriesCmd = &cobra.Command{
	Use:   "series <node>",
	Short: "Dump one node's recorded score trajectory",
	Long: `Read the history database and print the (tick, score) series for one
node, ordered by tick.

Examples:
  centrograph series 0 --db ticks.db
  CENTROGRAPH_DB=ticks.db centrograph series 3 --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSeries,
}

// SeriesReport is the series command's output document.
type SeriesReport struct {
	Node   int           `json:"node" yaml:"node"`
	Points []SeriesPoint `json:"points" yaml:"points"`
}

// SeriesPoint mirrors history.Point with output tags.
type SeriesPoint struct {
	Tick  int     `json:"tick" yaml:"tick"`
	Score float64 `json:"score" yaml:"score"`
}

func runSeries(cmd *cobra.Command, args []string) error {
	node, err := strconv.Atoi(args[0])
	if err != nil {
		exitWithError(ExitError, "node must be an integer, got %q", args[0])
	}

	path := defaultDBPath(seriesDB)
	if path == "" {
		exitWithError(ExitError, "no database: pass --db or set %s", envDBPath)
	}

	store, err := history.Open(path)
	if err != nil {
		exitWithError(ExitDBError, "opening history database: %v", err)
	}
	defer store.Close()

	series, err := store.NodeSeries(node)
	if err != nil {
		exitWithError(ExitDBError, "reading series for node %d: %v", node, err)
	}

	report := SeriesReport{Node: node, Points: make([]SeriesPoint, 0, len(series))}
	for _, p := range series {
		report.Points = append(report.Points, SeriesPoint{Tick: p.Tick, Score: p.Score})
	}

	return output(report, seriesYAML)
}
