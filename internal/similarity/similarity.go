// Package similarity turns short text documents into comparable vectors.
//
// An Encoder is built per corpus, so vectors from different encoders are not comparable.
package similarity

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyVocabulary is returned when a corpus yields no usable terms.
var ErrEmptyVocabulary = errors.New("empty vocabulary: corpus contains only stop words or no terms")

// Vector is a dense document encoding.
type Vector []float64

// Encoder encodes documents and compares encodings.
type Encoder interface {
	Encode(doc string) Vector
	Similarity(a, b Vector) float64
}

// Factory builds an Encoder fitted to a corpus.
type Factory func(corpus []string) (Encoder, error)

// Cosine returns the cosine similarity of a and b.
// Mismatched lengths and zero vectors yield 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := floats.Dot(a, b) / (na * nb)
	// float error can push identical vectors past 1
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}
