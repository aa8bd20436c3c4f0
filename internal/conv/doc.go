// Package conv provides checked integer conversions for size and count
// boundaries.
//
// Element counts arrive as int from callers, but persisted headers use fixed
// width unsigned fields and byte sizes are count*elemSize. Every crossing of
// those boundaries goes through this package so overflow turns into an error
// instead of a short allocation.
package conv
