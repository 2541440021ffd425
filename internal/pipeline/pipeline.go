// Package pipeline wires the loader, role resolver, normalizer, reference
// enricher and chart builder into a single fail-fast run.
package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pediametrics/growthchart-cli/internal/growthref"
	"github.com/pediametrics/growthchart-cli/internal/plot"
	"github.com/pediametrics/growthchart-cli/internal/series"
	"github.com/pediametrics/growthchart-cli/internal/table"
)

// Params carries one invocation's inputs.
type Params struct {
	Gender string // "M" or "F"
	DOB    time.Time
	Table  string // raw CSV/TSV text
	Which  growthref.Metric
	Name   string // optional subject display name
}

// Result is the structured outcome of a run: 200 plus the rendered chart path
// on success, 400 plus a descriptive message on any input or lookup error.
type Result struct {
	Code    int
	Message string
	Path    string
}

// RenderFunc produces the output artifact for a built chart spec. Injectable
// so tests can run the full pipeline without touching the filesystem.
type RenderFunc func(*plot.Spec) (string, error)

// Pipeline runs growth-chart builds against a reference lookup. Each Run owns
// its data exclusively; there is no cross-run state.
type Pipeline struct {
	lookup growthref.Lookup
	render RenderFunc
	log    *zap.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRenderer replaces the default go-chart PNG renderer.
func WithRenderer(r RenderFunc) Option {
	return func(p *Pipeline) { p.render = r }
}

// WithLogger attaches a debug logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// New builds a Pipeline around the given lookup collaborator.
func New(lookup growthref.Lookup, opts ...Option) *Pipeline {
	p := &Pipeline{
		lookup: lookup,
		render: func(s *plot.Spec) (string, error) { return plot.Render(s, plot.RenderOptions{}) },
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run executes the whole pipeline for one table. The first error anywhere
// aborts the run; no partial chart is ever produced.
func (p *Pipeline) Run(ctx context.Context, params Params) Result {
	if params.Gender != "M" && params.Gender != "F" {
		return fail(fmt.Errorf("gender must be M or F, got %q", params.Gender))
	}
	if _, err := growthref.ParseMetric(string(params.Which)); err != nil {
		return fail(err)
	}

	tbl, err := table.Load(params.Table)
	if err != nil {
		return fail(err)
	}
	roles, err := table.Resolve(tbl.Columns, requiredRoles(params.Which)...)
	if err != nil {
		return fail(err)
	}
	p.log.Debug("table loaded",
		zap.Int("rows", len(tbl.Rows)),
		zap.Any("roles", roles))

	obs := make([]table.Observation, len(tbl.Rows))
	for i, row := range tbl.Rows {
		o, err := table.Normalize(row, roles, i)
		if err != nil {
			return fail(err)
		}
		obs[i] = o
	}

	set, err := series.Build(ctx, p.lookup, params.Gender, params.DOB, params.Which, obs, p.log)
	if err != nil {
		return fail(err)
	}

	spec := plot.Build(set, params.Name)
	path, err := p.render(spec)
	if err != nil {
		return fail(err)
	}
	return Result{Code: http.StatusOK, Message: "ok", Path: path}
}

// requiredRoles translates a chart kind into the metric columns it needs; the
// age/date requirement is unconditional and enforced by table.Resolve itself.
func requiredRoles(which growthref.Metric) []table.Role {
	switch which {
	case growthref.Height:
		return []table.Role{table.RoleHeight}
	case growthref.Weight:
		return []table.Role{table.RoleWeight}
	case growthref.BMI:
		return []table.Role{table.RoleHeight, table.RoleWeight}
	}
	return nil
}

func fail(err error) Result {
	return Result{Code: http.StatusBadRequest, Message: err.Error()}
}
