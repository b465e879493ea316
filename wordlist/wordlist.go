// Package wordlist loads newline-delimited word lists into sets.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// DefaultComment is the comment marker used by the bundled lists.
const DefaultComment = "#"

// Set is a read-only collection of distinct words once built.
type Set map[string]struct{}

func NewSet(words ...string) Set {
	set := make(Set, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// Contains is safe on a nil set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Words returns the entries in sorted order.
func (s Set) Words() []string {
	words := make([]string, 0, len(s))
	for word := range s {
		words = append(words, word)
	}
	slices.Sort(words)
	return words
}

// Load reads one entry per line. Surrounding whitespace is trimmed, blank
// lines are skipped and so are lines starting with comment when it is set.
func Load(r io.Reader, comment string) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if comment != "" && strings.HasPrefix(line, comment) {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func LoadFile(path, comment string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer file.Close()
	set, err := Load(file, comment)
	if err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", path, err)
	}
	return set, nil
}
