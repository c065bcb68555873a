// Package inkfield provides the procedural core of generative pen-plotter
// drawings: scalar fields that say where ink should go, a digger that traces
// strokes through those fields, a circle packer for placing decorations, an
// occupancy raster that tracks where ink already went, and polyline
// simplification.
//
// Everything is deterministic. Every function that needs randomness takes a
// [*Rand], which is seeded from a hash (see [ParseSeed]) or a number. The same
// seed and the same parameters produce the same drawing, point for point.
//
// # Fields and digging
//
// A [Field] is a grid of float64 values over the canvas, filled once through
// a [Filler] and sampled with bilinear interpolation. A typical piece
// repeatedly asks the field for an approximate maximum
// ([Field.FindApproximateMax]), digs a [Route] from there with [Dig], and
// keeps the route if it is long enough. Digging decays the field along the
// way, so the next maximum is somewhere else. [DigRoutes] runs that loop.
//
// None of this reports errors. "Nothing found" is a normal result, expressed
// as a false boolean or an empty route, and callers skip, retry, or stop.
//
// # Packing
//
// [Pack] places non-overlapping circles subject to a validity predicate. The
// predicate usually consults an [OccupancyGrid] at a ring of boundary points,
// see [RingValid].
//
// # Occupancy
//
// An [OccupancyGrid] counts how often each cell was drawn over. Paint the
// strokes you emitted into it, [OccupancyGrid.Grow] it to keep a visual gap,
// and use it as an obstacle oracle for packing or further digging.
//
// # Rasters
//
// [Field] and [OccupancyGrid] share the generic [Raster] type, which defines
// the discretization: a node every Precision units, including the far edges
// of the domain.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Parallel callers give
// every goroutine its own fields, grids and generators.
package inkfield
