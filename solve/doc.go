// Package solve finds every solution of f(x) = g(y) over F_p² by exhaustive
// search.
//
// The search visits all p² candidates for x and all p² candidates for y,
// O(p⁴) evaluations in total, so it is meant for small moduli only:
//
//	a := quadext.FromBase(primefield.New[primefield.P7](1))
//	b := quadext.FromBase(primefield.New[primefield.P7](1))
//	f := poly.Weierstrass(a, b)
//	g := poly.Square[quadext.Element[primefield.Element[primefield.P7]]]()
//
//	set := solve.Enumerate(f, g)
//	fmt.Println(set.Size()) // 54
//
// The result is a [SolutionSet], built once and read-only afterwards.
//
// # Parallel Search
//
// [EnumerateParallel] splits the outer loop over x between workers. Each
// worker collects into a private slice, so the result is identical to
// [Enumerate] and no locking is involved. It stops early when its context
// is cancelled.
//
// # Digests
//
// [Digest] hashes a solution set with BLAKE2b-256 over a canonical, sorted
// encoding. Two enumerations agree exactly when their digests do.
package solve
