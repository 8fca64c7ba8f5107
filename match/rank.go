package match

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/high-horse/drawauth/dhash"
)

// Candidate is one gallery entry scored against a probe.
type Candidate struct {
	Subject string `json:"subject"`
	Result
}

func byDistance(a, b interface{}) int {
	ca, cb := a.(Candidate), b.(Candidate)
	switch {
	case ca.Distance < cb.Distance:
		return -1
	case ca.Distance > cb.Distance:
		return 1
	case ca.Subject < cb.Subject:
		return -1
	case ca.Subject > cb.Subject:
		return 1
	}
	return 0
}

// Rank scores probe against every fingerprint in gallery and returns the
// accepted candidates, closest first, ties ordered by subject. At most limit
// candidates are returned; limit <= 0 means no limit.
func Rank(probe dhash.Fingerprint, gallery map[string]dhash.Fingerprint, threshold, limit int) []Candidate {
	subjects := maps.Keys(gallery)
	slices.Sort(subjects)

	heap := binaryheap.NewWith(byDistance)
	for _, subject := range subjects {
		res := Compare(probe, gallery[subject], threshold)
		if res.Accepted {
			heap.Push(Candidate{Subject: subject, Result: res})
		}
	}

	n := heap.Size()
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Candidate, 0, n)
	for len(out) < n {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		out = append(out, v.(Candidate))
	}
	return out
}
