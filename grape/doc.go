// Package grape defines the boundary between graph algorithms and the
// engine that drives them: partitions (fragments), raw argument vectors,
// and the Init/Output lifecycle of an algorithm context.
//
// Partitioning, message passing and superstep scheduling live outside this
// module. Algorithms keep per-vertex state in array.Array values sized to a
// fragment's vertex counts.
package grape
