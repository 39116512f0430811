package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/satcore/satcore/reduction"
)

// parseGraph reads a plain-text edge list, one edge per line ("u v"),
// and returns the graph over every vertex mentioned. Blank lines and
// lines starting with '#' are ignored.
func parseGraph(r io.Reader) (*reduction.Graph, error) {
	seen := make(map[string]bool)
	var vertices []string
	var edges [][2]string

	addVertex := func(v string) {
		if !seen[v] {
			seen[v] = true
			vertices = append(vertices, v)
		}
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		addVertex(fields[0])
		addVertex(fields[1])
		edges = append(edges, [2]string{fields[0], fields[1]})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return reduction.NewGraph(vertices, edges), nil
}
