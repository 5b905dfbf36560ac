package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/commtree/core"
)

// Sentinel errors for edge-list loading.
var (
	// ErrMalformedLine indicates a non-comment line with fewer than two
	// fields; the wrapping error carries the line number.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrNoEdges indicates the input contained no usable edges.
	ErrNoEdges = errors.New("edgelist: no edges in input")
)

const commentPrefix = "#"

// Load reads the edge list at path and builds a graph.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %s: %w", path, err)
	}
	return g, nil
}

// Read parses a whole edge list from r. The delimiter (tab vs comma) is
// sniffed over the full body before parsing, so mixed files resolve to
// the majority format the way the original TSV/CSV loader did.
func Read(r io.Reader) (*core.Graph, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	delim := sniffDelimiter(string(body))
	b := core.NewBuilder()
	edges := 0

	sc := bufio.NewScanner(strings.NewReader(string(body)))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields := splitFields(line, delim)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		from, to := fields[0], fields[1]
		if from == to {
			continue // self-loop: not representable in a simple graph
		}
		if err = b.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
		edges++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: scan: %w", err)
	}
	if edges == 0 {
		return nil, ErrNoEdges
	}

	return b.Build(), nil
}

// sniffDelimiter counts lines that look tab-separated against lines that
// look comma-separated; tabs must be the strict majority to win.
func sniffDelimiter(body string) rune {
	var tabs, commas int
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
			continue
		}
		if strings.ContainsRune(line, '\t') {
			tabs++
		}
		if strings.ContainsRune(line, ',') {
			commas++
		}
	}
	if tabs > commas {
		return '\t'
	}
	return ','
}

// splitFields splits on the sniffed delimiter and trims surrounding
// whitespace from each field, dropping empties (tolerates padded CSV and
// repeated tabs).
func splitFields(line string, delim rune) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool { return r == delim })
	out := raw[:0]
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
