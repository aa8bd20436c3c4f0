package output

import "strconv"

// DefaultPrefix is the path prefix of partition output files.
const DefaultPrefix = "/tmp/pagerank_output"

// PathFor returns the output path of partition fid: <prefix>_frag_<fid>.
func PathFor(prefix string, fid int) string {
	return prefix + "_frag_" + strconv.Itoa(fid)
}

// FormatLine appends one output line to dst. The score uses the shortest
// representation that round-trips, so 0.1 is written as "0.1".
func FormatLine(dst []byte, lid int, oid int64, score float64) []byte {
	dst = strconv.AppendInt(dst, int64(lid), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, oid, 10)
	dst = append(dst, '\t')
	dst = strconv.AppendFloat(dst, score, 'g', -1, 64)
	return append(dst, '\n')
}
