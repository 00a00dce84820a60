//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"syscall/js"
	"time"

	// Wasm hosts have no zoneinfo tree to fall back on.
	_ "time/tzdata"

	"github.com/mweber26/timestampandtz/tstz"
)

const (
	optFormat int = 1 << iota
	optParse
	optMove
	optInstant
	optWire
)

func convert(_ js.Value, args []js.Value) any {
	input := args[0].String()
	zone := args[1].String()
	target := args[2].String()
	picture := args[3].String()
	opts := args[4].Int()

	return execute(input, zone, target, picture, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optFormat", js.ValueOf(optFormat))
	js.Global().Set("optParse", js.ValueOf(optParse))
	js.Global().Set("optMove", js.ValueOf(optMove))
	js.Global().Set("optInstant", js.ValueOf(optInstant))
	js.Global().Set("optWire", js.ValueOf(optWire))

	<-stream
}

func execute(input, zone, target, picture string, opts int) string {
	// Bind the session time zone.
	ctx := context.Background()
	if zone != "" {
		ctx = tstz.ContextWithZone(ctx, zone)
	}

	// Parse the input, through the template pattern when requested.
	var ts tstz.TzStamp
	var err error
	if opts&optParse == optParse {
		ts, err = tstz.ToTimestamp(ctx, input, picture)
	} else {
		ts, err = tstz.Parse(ctx, input)
	}
	if err != nil {
		return fmt.Sprintf("Error parsing %v", err)
	}

	// Rebind to the target zone. The instant is unchanged.
	if opts&optMove == optMove {
		ts, err = ts.MoveZone(target)
		if err != nil {
			return fmt.Sprintf("Error %v", err)
		}
	}

	// Render the result.
	var buf bytes.Buffer
	if opts&optFormat == optFormat && opts&optParse != optParse {
		out, err := tstz.ToChar(ts, picture)
		if err != nil {
			return fmt.Sprintf("Error %v", err)
		}
		buf.WriteString(out)
	} else {
		buf.WriteString(ts.String())
	}

	// Append the absolute instant.
	if opts&optInstant == optInstant {
		fmt.Fprintf(&buf, "\n%s", ts.Time().Format(time.RFC3339Nano))
	}

	// Append the on-disk encoding.
	if opts&optWire == optWire {
		data, err := ts.MarshalBinary()
		if err != nil {
			return fmt.Sprintf("Error %v", err)
		}
		fmt.Fprintf(&buf, "\n\\x%x", data)
	}

	return html.EscapeString(buf.String())
}
