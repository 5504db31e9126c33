// Package matrix provides the minimal dense matrix used by the BFGS
// inverse-Hessian approximation.
//
// Dense is a row-major flat buffer with the explicit index formula i·cols+j —
// cache-friendly, deterministic loop order, no map iteration anywhere.
//
// The surface is intentionally small: construction (New, Identity), element
// access (At, Set), Clone, and matrix–vector products from both sides
// (MulVec, VecMul). BFGS replaces its matrix wholesale each accepted
// iteration instead of mutating it in place, so nothing here needs in-place
// algebra.
//
// Shape and index violations panic: inside a numeric inner loop they are
// programmer errors with no recovery path, the same fail-fast stance as
// package vecops.
//
// Complexity quicksheet:
//
//	New/Identity: O(n²) zero-init · At/Set: O(1) · Clone: O(n²) ·
//	MulVec/VecMul: O(n²)
package matrix
