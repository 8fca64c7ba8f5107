package main

import "github.com/high-horse/drawauth/match"

type EnrollResponse struct {
	Fingerprint string `json:"fingerprint"`
	Elapsed     string `json:"elapsed"`
}

type VerifyResponse struct {
	match.Result
	Confidence string `json:"confidence"`
	Required   string `json:"required_match"`
	Message    string `json:"message"`
	Elapsed    string `json:"elapsed"`
}

type IdentifyResponse struct {
	Candidates []match.Candidate `json:"candidates"`
	Searched   int               `json:"searched"`
	Elapsed    string            `json:"elapsed"`
}

type DistanceResponse struct {
	match.Result
}

// confidence buckets an accepted distance by how far inside the threshold it
// falls.
func confidence(r match.Result) string {
	switch {
	case !r.Accepted:
		return "none"
	case r.Distance == 0:
		return "exact"
	case r.Distance*2 <= r.Threshold:
		return "high"
	default:
		return "marginal"
	}
}
