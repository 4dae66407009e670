// Package cluster implements a growable group of sequence vertices that keeps
// a sparse table of directed transitive similarity distances between its
// members.
//
// A Cluster is seeded from one edge u→v (dist[u][v] = score, dist[v][u] = 0)
// and then only grows:
//
//	– TryInsert adds one external vertex, given the bridging edges between it
//	  and the cluster.
//	– TryMerge absorbs another cluster, given the bridging edges between the two.
//
// Both operations compute every new distance first, check each one with
// Acceptable, and only then commit. A rejected call leaves the member set,
// outdegrees and distance table exactly as they were.
//
// Distances propagate multiplicatively: if a candidate c has a direct edge
// into member t and t already reaches v with distance d, then c reaches v
// with bridge(c→t) × d. Only existing distances above threshold/maxBridge are
// multiplied through (a smaller product can never reach the threshold).
//
// Acceptance policy:
//
//	Acceptable(dIn, dOut, th) is false when
//	    (0 < dIn < th and 0 < dOut < th)  or  (0 < dIn + dOut < th).
//	No evidence at all (dIn == dOut == 0) is tolerated; weak evidence is not.
//
// Merge row computation can fan out over an errgroup (WithWorkers); results
// are staged and committed only after every row passed.
package cluster
