package nlp

import "math"

// TermVector is a sparse mapping from term to non-negative TF-IDF weight.
// An absent key means weight zero.
type TermVector map[string]float64

// IDFTable maps a term to its inverse-document-frequency weight. A table is
// only valid for the corpus it was built from: vectors produced against
// different tables are in incomparable scales and must never be mixed in one
// ranking, which is why tables are rebuilt per user per run and never cached.
type IDFTable map[string]float64

// BuildIDF computes a smoothed IDF table over a tokenized corpus:
// IDF(term) = ln((N+1)/(df+1)).
func BuildIDF(docs [][]string) IDFTable {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if seen[term] {
				continue
			}
			seen[term] = true
			df[term]++
		}
	}

	n := float64(len(docs))
	idf := make(IDFTable, len(df))
	for term, count := range df {
		idf[term] = math.Log((n + 1) / (float64(count) + 1))
	}
	return idf
}

// Vectorize converts a token sequence into a TF-IDF vector using the given
// IDF table. TF(term) = count/|doc|. Terms with zero weight are omitted so
// the vector stays sparse; empty input yields an empty (zero) vector.
func Vectorize(tokens []string, idf IDFTable) TermVector {
	vec := make(TermVector)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}

	total := float64(len(tokens))
	for term, count := range counts {
		weight := (float64(count) / total) * idf[term]
		if weight > 0 {
			vec[term] = weight
		}
	}
	return vec
}

// CosineSimilarity returns the cosine of the angle between two sparse
// vectors. Defined as 0 when either magnitude is zero.
func CosineSimilarity(a, b TermVector) float64 {
	var dot, magA, magB float64
	for term, wa := range a {
		magA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		magB += wb * wb
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
