// Package loader reads the three plain-text inputs of a wanderer run:
//
//   - node description:      "R C" followed by "x y type" triples
//   - edge description:      "x1-y1,x2-y2 weight" entries, applied symmetrically
//   - objective description: "radius", "startX startY", then one objective per
//     line, "destX destY [offer...]"
//
// Tokens are whitespace separated. Node and edge files may wrap entries across
// lines freely; objective lines are significant because trailing integers on a
// line form that objective's advisor offer.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wanderer/gridgraph"
	"github.com/katalvlaran/wanderer/navigator"
)

// ErrMalformed indicates input that does not follow the expected format.
var ErrMalformed = errors.New("loader: malformed input")

// Scenario is a parsed objective description.
type Scenario struct {
	Radius     int
	Start      gridgraph.Cell
	Objectives []navigator.Objective
}

// ReadGrid builds a grid from a node description and an edge description.
func ReadGrid(nodes, edges io.Reader) (*gridgraph.GridGraph, error) {
	b, err := readNodes(nodes)
	if err != nil {
		return nil, err
	}
	if err := readEdges(edges, b); err != nil {
		return nil, err
	}

	return b.Build()
}

func readNodes(r io.Reader) (*gridgraph.Builder, error) {
	words, err := scanWords(r)
	if err != nil {
		return nil, err
	}
	if len(words) < 2 {
		return nil, fmt.Errorf("%w: nodes: missing grid dimensions", ErrMalformed)
	}
	dims, err := atoiAll(words[:2])
	if err != nil {
		return nil, fmt.Errorf("nodes: dimensions: %w", err)
	}
	b := gridgraph.NewBuilder(dims[0], dims[1])

	rest := words[2:]
	if len(rest)%3 != 0 {
		return nil, fmt.Errorf("%w: nodes: %d trailing tokens after last triple", ErrMalformed, len(rest)%3)
	}
	for i := 0; i < len(rest); i += 3 {
		v, err := atoiAll(rest[i : i+3])
		if err != nil {
			return nil, fmt.Errorf("nodes: entry %d: %w", i/3+1, err)
		}
		b.SetType(gridgraph.Cell{X: v[0], Y: v[1]}, v[2])
	}
	if _, err := b.Build(); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}

	return b, nil
}

func readEdges(r io.Reader, b *gridgraph.Builder) error {
	words, err := scanWords(r)
	if err != nil {
		return err
	}
	if len(words)%2 != 0 {
		return fmt.Errorf("%w: edges: entry %q has no weight", ErrMalformed, words[len(words)-1])
	}
	for i := 0; i < len(words); i += 2 {
		from, to, err := parseEdge(words[i])
		if err != nil {
			return fmt.Errorf("edges: entry %d: %w", i/2+1, err)
		}
		w, err := strconv.ParseFloat(words[i+1], 64)
		if err != nil {
			return fmt.Errorf("%w: edges: entry %d: weight %q", ErrMalformed, i/2+1, words[i+1])
		}
		b.SetEdge(from, to, w)
	}
	if _, err := b.Build(); err != nil {
		return fmt.Errorf("edges: %w", err)
	}

	return nil
}

// parseEdge splits "x1-y1,x2-y2" into two cells.
func parseEdge(s string) (gridgraph.Cell, gridgraph.Cell, error) {
	ends := strings.Split(s, ",")
	if len(ends) != 2 {
		return gridgraph.Cell{}, gridgraph.Cell{}, fmt.Errorf("%w: edge %q", ErrMalformed, s)
	}
	a, err := parseCell(ends[0])
	if err != nil {
		return gridgraph.Cell{}, gridgraph.Cell{}, err
	}
	b, err := parseCell(ends[1])
	if err != nil {
		return gridgraph.Cell{}, gridgraph.Cell{}, err
	}

	return a, b, nil
}

// parseCell parses "x-y".
func parseCell(s string) (gridgraph.Cell, error) {
	xy := strings.Split(s, "-")
	if len(xy) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q", ErrMalformed, s)
	}
	v, err := atoiAll(xy)
	if err != nil {
		return gridgraph.Cell{}, err
	}

	return gridgraph.Cell{X: v[0], Y: v[1]}, nil
}

// ReadObjectives parses an objective description.
func ReadObjectives(r io.Reader) (Scenario, error) {
	var sc Scenario
	lines, err := scanLines(r)
	if err != nil {
		return sc, err
	}

	// The header is the first three integers, however they are wrapped.
	var header []string
	li := 0
	for ; li < len(lines) && len(header) < 3; li++ {
		header = append(header, strings.Fields(lines[li].text)...)
	}
	if len(header) != 3 {
		return sc, fmt.Errorf("%w: objectives: header needs radius, start x and start y", ErrMalformed)
	}
	h, err := atoiAll(header)
	if err != nil {
		return sc, fmt.Errorf("objectives: header: %w", err)
	}
	sc.Radius, sc.Start = h[0], gridgraph.Cell{X: h[1], Y: h[2]}

	for _, l := range lines[li:] {
		fields := strings.Fields(l.text)
		if len(fields) < 2 {
			return sc, fmt.Errorf("%w: objectives: line %d: need destination x and y", ErrMalformed, l.no)
		}
		v, err := atoiAll(fields)
		if err != nil {
			return sc, fmt.Errorf("objectives: line %d: %w", l.no, err)
		}
		obj := navigator.Objective{Destination: gridgraph.Cell{X: v[0], Y: v[1]}}
		if len(v) > 2 {
			obj.Offer = v[2:]
		}
		sc.Objectives = append(sc.Objectives, obj)
	}

	return sc, nil
}

type line struct {
	no   int
	text string
}

// scanLines returns the non-blank lines of r with their 1-based numbers.
func scanLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		out = append(out, line{no: no, text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return out, nil
}

func scanWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return out, nil
}

func atoiAll(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q", ErrMalformed, w)
		}
		out[i] = v
	}

	return out, nil
}
