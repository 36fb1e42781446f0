package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
)

var separator = strings.Repeat("-", 50)

// printResults writes the human-readable search listing.
func printResults(w io.Writer, res result.Result) {
	fmt.Fprintln(w, "\nSearch Results:")
	for _, h := range res.Hits() {
		fmt.Fprintf(w, "Name: %s\n", h.Name())
		fmt.Fprintf(w, "Price: $%.2f\n", h.Price())
		fmt.Fprintf(w, "Description: %s\n", h.Description())
		fmt.Fprintln(w, separator)
	}
	// Every failure, query embedding included, prints its reason here.
	if res.Reason() != nil {
		fmt.Fprintf(w, "No results: %v\n", res.Reason())
	}
}

// printInstructions writes the generated cooking instructions block.
func printInstructions(w io.Writer, text string) {
	fmt.Fprintln(w, "\nCooking Instructions:")
	fmt.Fprintln(w, text)
}
