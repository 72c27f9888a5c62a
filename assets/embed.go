// assets/embed.go
//
// Embedded static data shipped with the binary.
//   - wordlist.txt: the default Hangman vocabulary.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed wordlist.txt
var FS embed.FS

// readLines returns the trimmed, lowercased, non-comment lines of an embedded file.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded default vocabulary.
func WordList() ([]string, error) {
	return readLines("wordlist.txt")
}
