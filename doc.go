// Package seqclust groups redundant biological sequences by annealed,
// transitive agglomeration over a directed similarity graph.
//
// 🚀 What is seqclust?
//
//	A thread-safe clustering engine that turns an all-against-all hit table
//	into a partition of sequence identifiers:
//		• Scoring: e-value or identity × coverage → score in [0, 1]
//		• Graph: arena-backed directed graph with a candidate pool
//		• Clusters: all-or-nothing growth with a transitive distance table
//		• Controller: 100 annealed bands from the initial to the final threshold
//		• Output: TSV partitions, Badger-backed run history, Prometheus metrics
//
// Under the hood the work is split into small packages:
//
//	score/      - alignment statistics → normalized edge score
//	core/       - Graph, VertexID, Edge, candidate pool & pruning
//	bfs/        - weak connectivity, components over scored edges
//	cluster/    - Cluster, TryInsert, TryMerge, Acceptable
//	clustering/ - Controller: dispatch state machine & annealed Run
//	ingest/     - vertex list & hit table loaders
//	report/     - Partition, TSV read/write, equivalence
//	store/      - run persistence in Badger
//	builder/    - seeded synthetic datasets with planted families
//	metrics/    - Prometheus collector (clustering.Recorder)
//	cmd/seqclust - CLI: run, stats, show, runs, synth, version
//
// Quick ASCII example:
//
//	    A ──0.95──▶ B
//	    ▲ ◀──0.90── │
//	    └───0.80─── C
//
//	A and B seed a cluster on the first band; C joins once its direct and
//	transitive scores clear the cluster threshold in both directions.
//
//	go install github.com/katalvlaran/seqclust/cmd/seqclust@latest
package seqclust
