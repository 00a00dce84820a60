// Package main performs a basic timestamp conversion in order to test WASM
// compilation.
package main

import (
	"context"
	"fmt"
	_ "time/tzdata"

	"github.com/mweber26/timestampandtz/tstz"
)

func main() {
	// Parse a zoned timestamp literal.
	ts, _ := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ US/Eastern")

	// Format it with a template pattern.
	out, _ := tstz.ToChar(ts, `YYYY-MM-DD HH24:MI:SS TZ`)

	// Show the result.
	//nolint:forbidigo
	fmt.Printf("%s\n", out)
}
