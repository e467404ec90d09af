// Package builder defines shared constants used by graph constructors, ensuring
// consistent error context and validation across all topologies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodDegreeConstrained is the canonical name for the DegreeConstrained constructor.
	MethodDegreeConstrained = "DegreeConstrained"
	// MethodGenerateWithRetry is the canonical name for GenerateWithRetry.
	MethodGenerateWithRetry = "GenerateWithRetry"
)

//-----------------------------------------------------------------------------
// Topology minima
//-----------------------------------------------------------------------------

// MinCycleNodes is the minimum number of vertices for a simple cycle.
const MinCycleNodes = 3

// MinPathNodes is the minimum number of vertices for a path.
const MinPathNodes = 2

// MinStarNodes is the minimum number of vertices for a star.
const MinStarNodes = 2

// MinWheelNodes is the minimum number of vertices for a wheel (hub + C3).
const MinWheelNodes = 4

// MinCompleteNodes is the minimum number of vertices for K_n.
const MinCompleteNodes = 1

// MinPartition is the minimum size of each side of K_{n1,n2}.
const MinPartition = 1

// MinGridDim is the minimum number of rows or columns in a grid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Generator constants
//-----------------------------------------------------------------------------

// RepairSlack is the only shortfall the deadlock repair tolerates: a vertex
// stuck exactly this many endpoints below its target is left short.
const RepairSlack = 2
