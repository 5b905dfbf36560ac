// Package decompose defines options, sentinel errors, and result types
// for the community decomposition engine.
package decompose

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/partition"
)

// Defaults for DecomposeOptions.
const (
	// DefaultMinVertices is the subgraph size at or below which recursion
	// stops (stop condition B).
	DefaultMinVertices = 3

	// DefaultBinWidth is the number of top-degree vertices tracked as key
	// regulators.
	DefaultBinWidth = 50

	// DefaultMaxDepth bounds recursion defensively against adversarial
	// inputs (e.g. long chains of singleton splits).
	DefaultMaxDepth = 4096
)

// RootLineage is the lineage string of the decomposition root.
const RootLineage = "0"

// lineageSep joins lineage segments below the first level.
const lineageSep = "_"

// Sentinel errors for decomposition.
var (
	// ErrGraphNil is returned when Decompose is invoked without a graph.
	ErrGraphNil = errors.New("decompose: graph is nil")

	// ErrBadBinWidth is returned when BinWidth is not a positive integer.
	ErrBadBinWidth = errors.New("decompose: key regulator bin width must be positive")

	// ErrBadMinVertices is returned when MinVertices is not a positive integer.
	ErrBadMinVertices = errors.New("decompose: minimum vertices must be positive")

	// ErrBadMaxDepth is returned when MaxDepth is not a positive integer.
	ErrBadMaxDepth = errors.New("decompose: max depth must be positive")

	// ErrDepthExceeded is returned when recursion passes MaxDepth.
	ErrDepthExceeded = errors.New("decompose: recursion depth exceeded")
)

// PartitionFunc produces the community blocks of a subgraph. The default
// delegates to partition.Communities with the configured Algorithm;
// tests and callers with custom detectors may substitute their own.
type PartitionFunc func(*core.Graph) ([][]int, error)

// Option configures optional behavior of Decompose.
type Option func(*DecomposeOptions)

// DecomposeOptions holds the configurable parameters of one run.
type DecomposeOptions struct {
	// Ctx allows cancellation; checked once per visited node.
	Ctx context.Context

	// MinVertices is the stop-condition-B threshold (inclusive).
	MinVertices int

	// BinWidth is the number of highest-degree root vertices selected as
	// key regulators.
	BinWidth int

	// Algorithm selects the community-detection method for the default
	// partitioner.
	Algorithm partition.Algorithm

	// Partitioner overrides the community detector; nil means the default.
	Partitioner PartitionFunc

	// MaxDepth bounds recursion; exceeding it fails the whole run.
	MaxDepth int

	// Logger receives structured per-node events; defaults to a no-op.
	Logger *zap.Logger
}

// DefaultOptions returns the documented defaults: background context,
// MinVertices=3, BinWidth=50, FastMultilevel, MaxDepth=4096, no-op logger.
func DefaultOptions() DecomposeOptions {
	return DecomposeOptions{
		Ctx:         context.Background(),
		MinVertices: DefaultMinVertices,
		BinWidth:    DefaultBinWidth,
		Algorithm:   partition.FastMultilevel,
		MaxDepth:    DefaultMaxDepth,
		Logger:      zap.NewNop(),
	}
}

// WithContext sets the cancellation context. Nil keeps the background one.
func WithContext(ctx context.Context) Option {
	return func(o *DecomposeOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinVertices sets the minimum-vertex stop threshold.
func WithMinVertices(n int) Option {
	return func(o *DecomposeOptions) { o.MinVertices = n }
}

// WithBinWidth sets the key-regulator bin width.
func WithBinWidth(w int) Option {
	return func(o *DecomposeOptions) { o.BinWidth = w }
}

// WithAlgorithm selects the community-detection algorithm.
func WithAlgorithm(a partition.Algorithm) Option {
	return func(o *DecomposeOptions) { o.Algorithm = a }
}

// WithPartitioner substitutes a custom community detector.
func WithPartitioner(fn PartitionFunc) Option {
	return func(o *DecomposeOptions) { o.Partitioner = fn }
}

// WithMaxDepth bounds the recursion depth.
func WithMaxDepth(d int) Option {
	return func(o *DecomposeOptions) { o.MaxDepth = d }
}

// WithLogger installs a zap logger for per-node events. Nil keeps the
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *DecomposeOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}
