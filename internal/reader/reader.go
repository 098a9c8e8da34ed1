// Package reader parses the upstream gperf-style dictionary format into
// the flat word list dafsa.BuildWordGraph expects: each output
// word is a dictionary name with its trailing return digit character
// appended, optionally with the name reversed character-wise.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options controls how a dictionary file is read.
type Options struct {
	// Reverse reverses the name portion of every entry character-wise
	// before it is handed to the compiler, so a downstream matcher can
	// walk the encoded dictionary right-to-left (e.g. matching domain
	// suffixes).
	Reverse bool
	// Dedupe removes duplicate lines before compiling, keeping each
	// line's first occurrence. It is off in the zero value; cmd/dafsagen
	// turns it on.
	Dedupe bool
}

// Read parses a gperf-style dictionary from r and returns the word list
// ready for dafsa.BuildWordGraph / dafsa.Compile.
//
// The format, taken verbatim from the upstream tool: an arbitrary header,
// then a line containing only "%%", then one "<name>, <digit>" entry per
// line, then a second "%%" line (and an optional trailer, both ignored).
func Read(r io.Reader, opts Options) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}

	begin := indexOf(lines, "%%")
	if begin < 0 {
		return nil, fmt.Errorf("reader: missing opening %%%% marker")
	}
	begin++
	end := indexOfFrom(lines, "%%", begin)
	if end < 0 {
		return nil, fmt.Errorf("reader: missing closing %%%% marker")
	}
	body := lines[begin:end]

	words := make([]string, 0, len(body))
	for _, line := range body {
		if line == "" {
			continue
		}
		word, err := parseEntry(line, opts.Reverse)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	if opts.Dedupe {
		words = dedupeLines(words)
	}
	return words, nil
}

// parseEntry parses a single "<name>, <digit>" line, mirroring the
// upstream parse_gperf's exact slicing and validation.
func parseEntry(line string, reverse bool) (string, error) {
	if len(line) < 4 || line[len(line)-3:len(line)-1] != ", " {
		return "", fmt.Errorf("reader: expected \"domainname, <digit>\", found %q", line)
	}
	last := line[len(line)-1]
	if last < '0' || last > '7' {
		return "", fmt.Errorf("reader: expected value to be in the range of 0-7, found %q", string(last))
	}
	name := line[:len(line)-3]
	if reverse {
		name = reverseString(name)
	}
	return name + string(last), nil
}

func indexOf(lines []string, target string) int {
	return indexOfFrom(lines, target, 0)
}

func indexOfFrom(lines []string, target string, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i] == target {
			return i
		}
	}
	return -1
}
