// Package builder generates deterministic synthetic clustering inputs:
// planted families of near-identical sequences plus optional cross-family
// noise, together with the ground-truth grouping.
//
// The package offers:
//
//   - Build(opts, cons...): resolves options once and applies constructors in order.
//   - Constructors:
//     – Family(size, identity):   one fully connected family.
//     – Families(n, size, id):    n families of equal size.
//     – Noise(p, identity):       Bernoulli cross-family hits.
//   - Options (panic on meaningless values):
//     – WithSeed / WithRand:      RNG for Noise and jitter.
//     – WithJitter(sigma):        lower intra-family identities by |N(0,σ)|.
//     – WithCoverage(pct):        query coverage on every hit.
//     – WithIDScheme(fn):         identifier generator (DefaultIDFn, PrefixIDFn).
//   - Dataset helpers: Load into a core.Graph, WriteVertices/WriteHits in the
//     formats ingest reads, Truth() as a report.Partition.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical datasets.
//   - No duplicate ordered pairs and no self hits.
//   - Runtime validation returns sentinel errors; only WithX options panic.
package builder
