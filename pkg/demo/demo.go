// Package demo builds the sample values of the planet-distance example and
// combines them with the "+" operator.
package demo

import "github.com/NilsRamstoeck/weakly-typed/pkg/weak"

// Planets returns a map from planet names to their distance from the sun, in
// astronomical units.
func Planets() weak.Map {
	return weak.MakeMapFromPairs(
		weak.Pair{Key: "Mercury", Value: weak.NumberOf(0.4)},
		weak.Pair{Key: "Venus", Value: weak.NumberOf(0.7)},
		weak.Pair{Key: "Earth", Value: weak.NumberOf(1.0)},
		weak.Pair{Key: "Mars", Value: weak.NumberOf(1.5)},
	)
}

// Sample returns a list mixing a coerced string, a coerced number and a nested
// list holding a copy of planets.
func Sample(planets weak.Map) weak.List {
	return weak.MakeList(
		weak.StringOf(1),
		weak.NumberOf("5"),
		weak.MakeList(weak.Clone(planets), weak.StringOf(20)),
	)
}

// Result returns Sample(Planets()) + Planets().
func Result() weak.Value {
	planets := Planets()
	return weak.Add(Sample(planets), planets)
}
