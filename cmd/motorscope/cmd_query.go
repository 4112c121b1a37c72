package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/HerbHall/motorscope/internal/explorer"
)

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	fuel := fs.String("fuel", "all", "fuel filter: all, essence, hybride, mild-hybrid")
	priority := fs.String("priority", "innovation", "priority mode: performance, efficiency, innovation")
	term := fs.String("q", "", "search term (name, manufacturer, or equipped model)")
	dataset := fs.String("dataset", "", "YAML dataset to use instead of the embedded catalog")
	asJSON := fs.Bool("json", false, "print JSON instead of a table")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	filter, err := explorer.ParseFuelFilter(*fuel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	mode, err := explorer.ParsePriorityMode(*priority)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	cat, err := loadCatalog(*dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		os.Exit(1)
	}
	ranked, err := explorer.NewEngine(cat).Query(filter, mode, *term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %v\n", err)
		os.Exit(1)
	}

	if err := printRanked(os.Stdout, ranked, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
}

func printRanked(w io.Writer, ranked []explorer.Ranked, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tENGINE\tMANUFACTURER\tFUEL\tYEAR")
	for i, r := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			i+1, explorer.FormatScore(r.Score), r.Engine.Name, r.Engine.Manufacturer, r.Engine.FuelType, r.Engine.LaunchYear)
	}
	return tw.Flush()
}
