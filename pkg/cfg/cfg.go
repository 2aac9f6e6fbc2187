package cfg

// Odds that a generated stroke bounces or glances instead of crossing.
// The remainder of the probability mass stays with Cross, which is what
// gives the grids their woven look.
var BounceOdds = 1.0 / 15
var GlanceOdds = 1.0 / 15

// Junction density range for randomized grids: a generated mesh uses
// MinJunctionsPerUnit plus up to JunctionSpread extra junctions per world
// unit when the caller does not pin the density.
var MinJunctionsPerUnit = 6
var JunctionSpread = 9

// Thinning removes roughly 1/(MinThinDivisor + rand(ThinSpread)) of the
// strokes before open junctions are purged.
var MinThinDivisor = 3
var ThinSpread = 20

// SegmentsPerCrossing is the rendering sample density used by the CLI:
// line segments drawn per crossing pass of a thread.
var SegmentsPerCrossing = 10

// SimplifyEpsilon is the Douglas-Peucker tolerance applied to rendered
// polylines, in world units. Points closer than this to their chord are
// dropped.
var SimplifyEpsilon = 0.0005
