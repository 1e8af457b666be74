// Package entity defines the domain models for the identify feature.
package entity

// IdentificationCandidate is one species candidate returned by the upstream
// identification service. Candidates keep the upstream ranking order and are
// never re-sorted locally.
type IdentificationCandidate struct {
	ScientificName string   // without-author variant when the upstream provides one
	CommonNames    []string // may be empty
	Score          float64  // upstream confidence in [0,1], passed through as-is
}

// PurchaseLink is a shopping-search URL derived from the identified name.
type PurchaseLink struct {
	SiteName string
	URL      string
}

// IdentificationResult is the complete outcome of one identification request.
// It is built fresh per request and never persisted as-is.
type IdentificationResult struct {
	BestMatchScientificName string
	BestMatchCommonNames    string // comma-joined common names of the top candidate
	UpstreamBestMatch       string // raw best-match field reported by the upstream
	Candidates              []IdentificationCandidate
	PurchaseLinks           []PurchaseLink
}
