// Package pagerank holds the per-fragment state of a PageRank computation
// and its Init/Output lifecycle.
//
// Init takes two positional arguments, the damping factor and the maximum
// number of iterations:
//
//	pr := pagerank.NewContext()
//	if err := pr.Init(ctx, frag, grape.ArgsFromStrings("0.85", "10")); err != nil {
//	    return err
//	}
//	defer pr.Close()
//
//	// ... iterate, reading and writing pr.PageRank and pr.Degree ...
//
//	pr.Output(ctx, frag) // writes /tmp/pagerank_output_frag_<fid>
package pagerank
