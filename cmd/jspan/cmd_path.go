package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/jspan/dot"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <graph.dot> [from to]",
		Short: "Find a path between two nodes of a Graphviz graph",
		Long: `Find a path between two nodes of a Graphviz graph using depth first search.

With both node names given, print the path and exit. Otherwise list the
edges of the graph and ask for node pairs on stdin until EOF or "quit".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts a graph file, optionally followed by two node names, received %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open graph: %w", err)
			}
			edges, err := dot.ReadEdges(f)
			f.Close()
			if err != nil {
				return err
			}
			graph := dot.NewGraph(edges)

			out := cmd.OutOrStdout()
			if len(args) == 3 {
				return printPath(out, graph, args[1], args[2])
			}

			fmt.Fprintln(out, "Parsed edges:")
			for _, e := range edges {
				fmt.Fprintf(out, "%s -> %s\n", e.From, e.To)
			}
			return promptPaths(cmd.InOrStdin(), out, graph)
		},
	}
}

func printPath(w io.Writer, graph *dot.Graph, from, to string) error {
	path, err := graph.FindPath(from, to)
	if errors.Is(err, dot.ErrNoPath) {
		fmt.Fprintln(w, "No path found")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Path found: %s\n", strings.Join(path, " -> "))
	return nil
}

func promptPaths(r io.Reader, w io.Writer, graph *dot.Graph) error {
	fmt.Fprintln(w, "\nEnter two node names to find a path (or 'quit' to exit):")
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "From node: ")
		if !scanner.Scan() {
			break
		}
		from := strings.TrimSpace(scanner.Text())
		if from == "quit" {
			break
		}

		fmt.Fprint(w, "To node: ")
		if !scanner.Scan() {
			break
		}
		to := strings.TrimSpace(scanner.Text())
		if to == "quit" {
			break
		}

		if err := printPath(w, graph, from, to); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return scanner.Err()
}
