// Package curve implements the group law on rational points of a short
// Weierstrass curve
//
//	y² = x³ + a·x + b
//
// over any field type satisfying [Coordinate].
//
// A [Point] is either an affine pair (x, y) or the point at infinity O, the
// identity of the group. Points carry no reference to their curve: the
// coefficient a, the only one the group law needs, is passed to each
// operation.
//
//	P := curve.NewPoint(x1, y1)
//	Q := curve.NewPoint(x2, y2)
//	R, err := P.Add(Q, a)
//
// [Curve] bundles a and b for callers that prefer to keep the curve
// alongside its points, and adds membership, discriminant and scalar
// multiplication helpers.
//
// # Errors
//
// The slope of the chord or tangent needs an inverse. When that inverse
// does not exist (doubling a point with y = 0) Add returns an error that
// matches both [ErrNotAddable] and [algebra.ErrNoInverse].
//
// Addition compares stored coordinates literally. Two points with equal x
// and different y are treated as inverses, which is correct only when both
// lie on the same curve.
package curve
