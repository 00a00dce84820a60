package main

// Utility to generate `git diff` commands for the Postgres source from
// comments that contain GitHub URLs. Run the output in a Postgres Git clone
// to see what changed upstream since the cited tag, then update the ports
// and the comments together.
//
// go run .util/pglist.go

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

//	https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c#L4186-L4540
var pgURL = regexp.MustCompile(`postgres/postgres/blob/([^/]+)/([^#\s]+)`)

func main() {
	// tag → the upstream files cited at that tag
	cited := map[string]map[string]bool{}

	err := filepath.WalkDir("tstz", func(path string, info fs.DirEntry, err error) error {
		if err != nil || !strings.HasSuffix(info.Name(), ".go") {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		sc := bufio.NewScanner(file)
		for sc.Scan() {
			if match := pgURL.FindStringSubmatch(sc.Text()); match != nil {
				tag, src := match[1], match[2]
				if cited[tag] == nil {
					cited[tag] = map[string]bool{}
				}
				cited[tag][src] = true
			}
		}
		return sc.Err()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pglist: %v\n", err)
		os.Exit(1)
	}

	if len(cited) > 1 {
		fmt.Fprintf(os.Stderr, "pglist: citations span %d tags, update the stragglers: %v\n",
			len(cited), sortedKeys(cited))
	}

	fmt.Println("# Clone the next release tag from the Postgres repo and run these diffs:")
	for _, tag := range sortedKeys(cited) {
		for _, src := range sortedKeys(cited[tag]) {
			fmt.Printf("git diff %v -- %v\n", tag, src)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
