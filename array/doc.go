// Package array provides fixed-length typed arrays backed by grapevec vectors.
//
// An Array is sized once at construction and never grown, so references
// taken from it stay valid until Close. Algorithm contexts use them for
// per-vertex state such as scores and degrees.
package array
