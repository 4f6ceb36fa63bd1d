package scalar

// Numeric is the generic constraint matching the four element types a
// Kind names: real and complex, single and double precision. gemm uses
// it to generate one monomorphized Multiply specialization per concrete
// type rather than dispatching dynamically inside the hot loop — the
// idiom the janpfeifer-go-highway corpus entry uses for its own
// type-parameterized numeric kernels.
type Numeric interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}
