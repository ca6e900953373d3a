package observability

import (
	"context"
	"strings"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xtree/lib/tree"
)

var _ tree.RebalanceRecorder = (*TreeStats)(nil)

// TreeStats records the rebalancing work of a tree as OpenTelemetry
// metrics. Share one instance between trees to aggregate them.
type TreeStats struct {
	ctx       context.Context
	inserts   metric.Int64Counter
	rotations metric.Int64Counter
	fixups    metric.Int64Counter
	steps     metric.Int64Histogram
}

func (stats *TreeStats) RecordInsert() {
	stats.inserts.Add(stats.ctx, 1)
}

func (stats *TreeStats) RecordRotation(dir tree.RBDirection) {
	stats.rotations.Add(stats.ctx, 1, metric.WithAttributes(
		attribute.String("direction", dir.String()),
	))
}

func (stats *TreeStats) RecordFixup(c tree.FixupCase) {
	stats.fixups.Add(stats.ctx, 1, metric.WithAttributes(
		attribute.String("case", c.String()),
	))
}

func (stats *TreeStats) RecordFixupSteps(steps int64) {
	stats.steps.Record(stats.ctx, steps)
}

type treeStatsCfg struct {
	mp      metric.MeterProvider
	runtime bool
}

type TreeStatsOption func(*treeStatsCfg)

// WithTreeStatsMeterProvider the otel global meter provider is used
// by default.
func WithTreeStatsMeterProvider(mp metric.MeterProvider) TreeStatsOption {
	return func(cfg *treeStatsCfg) {
		if mp != nil {
			cfg.mp = mp
		}
	}
}

// WithTreeStatsRuntime starts the Go runtime metrics on the same
// meter provider.
func WithTreeStatsRuntime() TreeStatsOption {
	return func(cfg *treeStatsCfg) {
		cfg.runtime = true
	}
}

func meterName(name string) string {
	builder := &strings.Builder{}
	builder.WriteString("xtree/tree")
	builder.Write([]byte("/"))
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString(name)
	} else {
		builder.WriteString("default")
	}
	return builder.String()
}

func NewTreeStats(name string, opts ...TreeStatsOption) (*TreeStats, error) {
	cfg := &treeStatsCfg{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.mp == nil {
		cfg.mp = otel.GetMeterProvider()
	}

	meter := cfg.mp.Meter(
		meterName(name),
		metric.WithInstrumentationVersion(otelruntime.Version()),
	)
	stats := &TreeStats{
		ctx: context.Background(),
		inserts: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.tree.inserts",
			metric.WithDescription(`The values inserted into the tree.`),
		)),
		rotations: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.tree.rotations",
			metric.WithDescription(`The rotations applied, by direction.`),
		)),
		fixups: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.tree.fixups",
			metric.WithDescription(`The red-black fixup cases applied, by case.`),
		)),
		steps: lo.Must[metric.Int64Histogram](meter.Int64Histogram(
			"xtree.tree.fixup.steps",
			metric.WithDescription(`The fixup loop iterations of each insert.`),
			metric.WithExplicitBucketBoundaries(0, 1, 2, 4, 8, 16, 32),
		)),
	}
	if cfg.runtime {
		if err := otelruntime.Start(otelruntime.WithMeterProvider(cfg.mp)); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
