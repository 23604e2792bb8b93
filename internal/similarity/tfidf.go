package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TFIDFOptions controls term extraction and vocabulary size.
type TFIDFOptions struct {
	MaxFeatures int
	NGramMin    int
	NGramMax    int
	StopWords   map[string]struct{}
}

// DefaultTFIDFOptions returns English stop words, unigrams and bigrams, and a 1000 term cap.
func DefaultTFIDFOptions() TFIDFOptions {
	return TFIDFOptions{
		MaxFeatures: 1000,
		NGramMin:    1,
		NGramMax:    2,
		StopWords:   EnglishStopWords,
	}
}

// TFIDF is a term frequency / inverse document frequency encoder with smoothed IDF
// and L2 normalized rows.
type TFIDF struct {
	opts  TFIDFOptions
	vocab map[string]int
	terms []string
	idf   []float64
}

// NewTFIDF fits a TF-IDF encoder on corpus.
func NewTFIDF(corpus []string, opts TFIDFOptions) (*TFIDF, error) {
	if opts.NGramMin < 1 {
		opts.NGramMin = 1
	}
	if opts.NGramMax < opts.NGramMin {
		opts.NGramMax = opts.NGramMin
	}

	m := &TFIDF{opts: opts}

	docFreq := make(map[string]int)
	termFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range m.analyze(doc) {
			termFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	if len(termFreq) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(termFreq))
	for term := range termFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		// keep the most frequent terms; ties resolve alphabetically
		sort.SliceStable(terms, func(i, j int) bool {
			return termFreq[terms[i]] > termFreq[terms[j]]
		})
		terms = terms[:opts.MaxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(corpus))
	m.terms = terms
	m.vocab = make(map[string]int, len(terms))
	m.idf = make([]float64, len(terms))
	for i, term := range terms {
		m.vocab[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	return m, nil
}

// NewTFIDFFactory returns a Factory that fits a TF-IDF encoder with opts.
func NewTFIDFFactory(opts TFIDFOptions) Factory {
	return func(corpus []string) (Encoder, error) {
		return NewTFIDF(corpus, opts)
	}
}

// Encode returns the L2 normalized TF-IDF vector of doc. Out-of-vocabulary terms are ignored.
func (m *TFIDF) Encode(doc string) Vector {
	vec := make(Vector, len(m.terms))
	for _, term := range m.analyze(doc) {
		if idx, ok := m.vocab[term]; ok {
			vec[idx] += m.idf[idx]
		}
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// Similarity returns the cosine similarity of two encodings.
func (m *TFIDF) Similarity(a, b Vector) float64 {
	return Cosine(a, b)
}

// Vocabulary returns the fitted terms in index order.
func (m *TFIDF) Vocabulary() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// analyze lowercases, tokenizes, drops stop words and emits n-grams (shortest first).
func (m *TFIDF) analyze(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := m.opts.StopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}

	var out []string
	for n := m.opts.NGramMin; n <= m.opts.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
