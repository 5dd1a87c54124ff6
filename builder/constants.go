// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and error context across all constructors.
package builder

//-----------------------------------------------------------------------------
// Method name tags, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	methodRandomEdges       = "RandomEdges"
	methodRandomProbability = "RandomProbability"
	methodCirculant         = "Circulant"
	methodNewmanWatts       = "NewmanWatts"
	methodShortcuts         = "AddShortcuts"
	methodBarabasiAlbert    = "BarabasiAlbert"
	methodClique            = "Clique"
)

//-----------------------------------------------------------------------------
// Defaults and domains
//-----------------------------------------------------------------------------

// DefaultMinWeight and DefaultMaxWeight form the default weight range [1,1).
// The range is empty on purpose: weighted targets must configure WithWeightRange.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 1
)

// MinVertices is the smallest node count any generator accepts.
const MinVertices = 1

// Probability bounds for p (RandomProbability) and phi (NewmanWatts), inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
