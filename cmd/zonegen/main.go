//go:build go1.22

// Command zonegen maintains the time zone catalog in tstz/zone.
//
// It reads the append-only ledger zoneids.txt, scans a zoneinfo tree for
// zone names without an assigned id, appends those at the end of the id
// range, and regenerates catalog.go. Assignments are never renumbered or
// removed, persisted values embed the ids: a name the scan no longer finds
// stays in the ledger.
//
//	go run ./cmd/zonegen --zoneinfo /usr/share/zoneinfo
package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/maps" // Switch to maps when go 1.22 dropped
)

var (
	zoneinfo = pflag.String("zoneinfo", "/usr/share/zoneinfo", "zoneinfo tree to scan for zone names")
	ledger   = pflag.String("ledger", filepath.Join("tstz", "zone", "zoneids.txt"), "append-only zone id ledger")
	out      = pflag.String("out", filepath.Join("tstz", "zone", "catalog.go"), "generated catalog source file")
	dryRun   = pflag.Bool("dry-run", false, "report new zones without writing anything")
	verbose  = pflag.BoolP("verbose", "v", false, "enable debug logging")
)

type entry struct {
	id   int
	name string
}

func main() {
	pflag.Parse()
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if err := run(); err != nil {
		slog.Error("zonegen failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	entries, err := readLedger(*ledger)
	if err != nil {
		return err
	}
	names, err := scanZoneinfo(*zoneinfo)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.name] = true
	}

	added := 0
	for _, name := range names {
		if known[name] {
			continue
		}
		id := len(entries) + 1
		if id > math.MaxInt16 {
			return fmt.Errorf("zone id range exhausted at %q", name)
		}
		entries = append(entries, entry{id: id, name: name})
		slog.Info("assigning zone id", "id", id, "name", name)
		added++
	}

	if *dryRun {
		slog.Info("dry run, nothing written", "zones", len(entries), "new", added)
		return nil
	}
	if err := writeLedger(*ledger, entries); err != nil {
		return err
	}
	if err := writeCatalog(*out, entries); err != nil {
		return err
	}
	slog.Info("catalog written", "zones", len(entries), "new", added)
	return nil
}

// readLedger parses zoneids.txt: one "id<TAB>name" line per assigned zone,
// in assignment order. Ids are dense from 1; anything else means the ledger
// was hand-edited and the catalog can no longer be trusted.
func readLedger(path string) ([]entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []entry
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		idText, name, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("ledger %v: malformed line %q", path, line)
		}
		id, err := strconv.Atoi(idText)
		if err != nil {
			return nil, fmt.Errorf("ledger %v: bad id in %q: %w", path, line, err)
		}
		if id != len(entries)+1 {
			return nil, fmt.Errorf("ledger %v: id %v out of sequence, want %v", path, id, len(entries)+1)
		}
		entries = append(entries, entry{id: id, name: name})
	}
	return entries, sc.Err()
}

// scanZoneinfo returns the zone names under root, sorted. Zone files are
// recognized by the TZif magic. Names that do not start with a capital
// letter are skipped, the zoneinfo layout convention that keeps posix/,
// right/, zone.tab and friends out of the name space.
func scanZoneinfo(root string) ([]string, error) {
	seen := map[string]struct{}{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if name := d.Name(); name[0] < 'A' || name[0] > 'Z' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ok, err := isTZif(path)
		if err != nil {
			return err
		}
		if !ok {
			slog.Debug("not a zone file", "path", path)
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		seen[filepath.ToSlash(rel)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	names := maps.Keys(seen)
	slices.Sort(names)
	return names, nil
}

func isTZif(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	var magic [4]byte
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return false, nil
	}
	return string(magic[:]) == "TZif", nil
}

func writeLedger(path string, entries []entry) error {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%d\t%s\n", e.id, e.name)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// writeCatalog emits the Go source for the lookup table: the catalog array
// sorted by upper-cased name for binary search, and the byID index mapping
// id-1 back to a catalog position.
func writeCatalog(path string, entries []entry) error {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b entry) int {
		return strings.Compare(strings.ToUpper(a.name), strings.ToUpper(b.name))
	})
	for i := 1; i < len(sorted); i++ {
		if strings.EqualFold(sorted[i-1].name, sorted[i].name) {
			return fmt.Errorf("zone names %q and %q collide case-insensitively",
				sorted[i-1].name, sorted[i].name)
		}
	}

	byID := make([]int, len(entries))
	for i, e := range sorted {
		byID[e.id-1] = i
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by zonegen. DO NOT EDIT.\n\n")
	sb.WriteString("package zone\n\n")
	sb.WriteString("// catalog holds every assigned zone, sorted by Upper for binary search.\n")
	sb.WriteString("var catalog = [...]Entry{\n")
	for _, e := range sorted {
		fmt.Fprintf(&sb, "\t{%q, %q, %d},\n", e.name, strings.ToUpper(e.name), e.id)
	}
	sb.WriteString("}\n\n")
	sb.WriteString("// byID maps ID-1 to the entry's position in catalog.\n")
	sb.WriteString("var byID = [...]int16{\n")

	line := ""
	for _, idx := range byID {
		tok := strconv.Itoa(idx) + ","
		switch {
		case line == "":
			line = "\t" + tok
		case len(line)+1+len(tok) > 96:
			sb.WriteString(line + "\n")
			line = "\t" + tok
		default:
			line += " " + tok
		}
	}
	if line != "" {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("}\n")

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
