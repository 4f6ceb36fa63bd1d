// Package cosma is the top-level facade: Multiply computes
// C := alpha*op(A)*op(B) + beta*C across P cooperating simulated
// processes, deriving a strategy.Strategy (or honoring a caller-supplied
// one), then walking it depth-first — scattering and broadcasting via
// layout.Narrow, reducing K-axis partial sums via transport's
// AllReduceSum, and invoking gemm.LocalTiled at every leaf.
package cosma
