package main

import (
	"flag"
	"fmt"
	"os"
)

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	dataset := fs.String("dataset", "", "YAML dataset to validate (default: embedded catalog)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cat, err := loadCatalog(*dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validate failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := cat.Engines(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Dataset OK: %d engines\n", cat.Len())
}
