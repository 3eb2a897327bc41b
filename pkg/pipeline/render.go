package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/dag"
	errs "github.com/matzehuels/coursemap/pkg/errors"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/relation"
	"github.com/matzehuels/coursemap/pkg/render/nodelink"
)

// Highlights classifies every course of reg against focus. An empty focus
// yields None for every course; an unknown focus is a COURSE_NOT_FOUND error.
func Highlights(reg *catalog.Registry, focus string) (map[string]highlight.Category, error) {
	cl := highlight.NewClassifier(relation.New(reg))
	if focus == "" {
		return cl.Map(nil, reg.All()), nil
	}
	c, ok := reg.ByID(focus)
	if !ok {
		return nil, errs.New(errs.ErrCodeCourseNotFound, "course %q not found", focus)
	}
	return cl.Map(&c, reg.All()), nil
}

// BuildDOT returns the DOT source for reg under opts along with the graph
// statistics.
func BuildDOT(reg *catalog.Registry, highlights map[string]highlight.Category, opts Options) (string, Stats) {
	g, dangling := dag.FromRegistry(reg)
	dot := nodelink.ToDOT(g, nodelink.Options{
		Highlights:       highlights,
		Detailed:         opts.Detailed,
		ClusterByTerm:    opts.ClusterByTerm,
		ShowCorequisites: opts.ShowCorequisites,
	})
	return dot, Stats{
		Courses:  g.NodeCount(),
		Edges:    g.EdgeCount(),
		Dangling: len(dangling),
	}
}

// RenderDOT renders DOT source into each requested format.
func RenderDOT(ctx context.Context, dot string, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		case FormatDOT:
			data = []byte(dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
