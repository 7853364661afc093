package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoPath = errors.New("no path found")

type Edge struct {
	From string
	To   string
}

// ReadEdges returns an edge for every line of r containing exactly one
// "->". Trailing semicolons and attribute lists are dropped and quotes
// around node names removed.
func ReadEdges(r io.Reader) ([]Edge, error) {
	var edges []Edge
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, "->") {
			continue
		}
		parts := strings.Split(line, "->")
		if len(parts) != 2 {
			continue
		}
		from := nodeName(parts[0])
		to := nodeName(parts[1])
		if from == "" || to == "" {
			continue
		}
		edges = append(edges, Edge{From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return edges, fmt.Errorf("read dot: %w", err)
	}
	return edges, nil
}

func nodeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	if i := strings.Index(s, "["); i >= 0 && !strings.HasPrefix(s, `"`) {
		s = s[:i]
	} else if strings.HasPrefix(s, `"`) {
		if end := strings.Index(s[1:], `"`); end >= 0 {
			s = s[:end+2]
		}
	}
	s = strings.TrimSpace(s)
	return strings.Trim(s, `"`)
}

type Graph struct {
	Edges map[string][]string
}

func NewGraph(edges []Edge) *Graph {
	g := &Graph{Edges: make(map[string][]string)}
	for _, e := range edges {
		g.Edges[e.From] = append(g.Edges[e.From], e.To)
	}
	return g
}

// FindPath searches depth first from start and returns the first path that
// reaches end, neighbours being tried in edge order.
func (g *Graph) FindPath(start, end string) ([]string, error) {
	visited := make(map[string]bool)
	var path []string
	if g.dfs(start, end, visited, &path) {
		return path, nil
	}
	return nil, fmt.Errorf("%s -> %s: %w", start, end, ErrNoPath)
}

func (g *Graph) dfs(current, end string, visited map[string]bool, path *[]string) bool {
	if visited[current] {
		return false
	}

	*path = append(*path, current)
	visited[current] = true

	if current == end {
		return true
	}

	for _, next := range g.Edges[current] {
		if g.dfs(next, end, visited, path) {
			return true
		}
	}

	*path = (*path)[:len(*path)-1]
	return false
}
