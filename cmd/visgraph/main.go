// Command visgraph builds visibility graphs from polygon obstacle data and
// answers routing and visibility queries against them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kushrm2803/visgraph"
	"github.com/kushrm2803/visgraph/options"
	"github.com/kushrm2803/visgraph/point"
)

// coordinate is the JSON wire shape for a single polygon vertex.
type coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func main() {
	cmd := &cli.Command{
		Name:        "visgraph",
		Usage:       "Build visibility graphs over polygon obstacles and query shortest paths across them",
		HideVersion: true,
		Commands: []*cli.Command{
			buildCommand(),
			routeCommand(),
			visibleCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build a visibility graph from a JSON polygon file and save it",
		UsageText: "visgraph build --in polygons.json --out graph.gob [--workers N] [--progress]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Usage: "path to a JSON file of polygons ([][]{x,y})", Required: true, OnlyOnce: true},
			&cli.StringFlag{Name: "out", Usage: "path to write the built graph to", Required: true, OnlyOnce: true},
			&cli.IntFlag{Name: "workers", Usage: "number of parallel build workers", Value: 1, OnlyOnce: true},
			&cli.BoolFlag{Name: "progress", Usage: "print build progress to stderr", OnlyOnce: true},
		},
		Action: runBuild,
	}
}

func runBuild(_ context.Context, cmd *cli.Command) error {
	polygons, err := readPolygons(cmd.String("in"))
	if err != nil {
		return err
	}

	buildOpts := []options.EngineOptionFunc{options.WithWorkers(cmd.Int("workers"))}
	if cmd.Bool("progress") {
		buildOpts = append(buildOpts, options.WithProgress(func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rbuilding visibility graph: %d/%d batches", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}))
	}

	engine, err := visgraph.Build(polygons, buildOpts...)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := engine.Save(cmd.String("out")); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "Find the shortest obstacle-avoiding path between two points",
		UsageText: "visgraph route --graph graph.gob --from-x X --from-y Y --to-x X --to-y Y",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "graph", Usage: "path to a graph written by build", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "from-x", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "from-y", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "to-x", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "to-y", Required: true, OnlyOnce: true},
		},
		Action: runRoute,
	}
}

func runRoute(_ context.Context, cmd *cli.Command) error {
	engine, err := visgraph.Load(cmd.String("graph"))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	origin := point.New(cmd.Float64("from-x"), cmd.Float64("from-y"))
	destination := point.New(cmd.Float64("to-x"), cmd.Float64("to-y"))

	path, err := engine.ShortestPath(origin, destination)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	return json.NewEncoder(os.Stdout).Encode(toCoordinates(path))
}

func visibleCommand() *cli.Command {
	return &cli.Command{
		Name:      "visible",
		Usage:     "List every obstacle vertex visible from a point",
		UsageText: "visgraph visible --graph graph.gob --at-x X --at-y Y",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "graph", Usage: "path to a graph written by build", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "at-x", Required: true, OnlyOnce: true},
			&cli.Float64Flag{Name: "at-y", Required: true, OnlyOnce: true},
		},
		Action: runVisible,
	}
}

func runVisible(_ context.Context, cmd *cli.Command) error {
	engine, err := visgraph.Load(cmd.String("graph"))
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	from := point.New(cmd.Float64("at-x"), cmd.Float64("at-y"))
	visible, err := engine.FindVisible(from)
	if err != nil {
		return fmt.Errorf("visible: %w", err)
	}

	return json.NewEncoder(os.Stdout).Encode(toCoordinates(visible))
}

func readPolygons(path string) ([][]point.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw [][]coordinate
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	polygons := make([][]point.Point, len(raw))
	for i, ring := range raw {
		pts := make([]point.Point, len(ring))
		for j, c := range ring {
			pts[j] = point.New(c.X, c.Y)
		}
		polygons[i] = pts
	}
	return polygons, nil
}

func toCoordinates(points []point.Point) []coordinate {
	out := make([]coordinate, len(points))
	for i, p := range points {
		out[i] = coordinate{X: p.X(), Y: p.Y()}
	}
	return out
}
