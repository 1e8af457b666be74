// Package dto defines the wire types of the PlantNet identify API.
package dto

// Species holds the naming fields of one candidate.
type Species struct {
	ScientificNameWithoutAuthor string   `json:"scientificNameWithoutAuthor"`
	ScientificName              string   `json:"scientificName"`
	CommonNames                 []string `json:"commonNames"`
}

// Result is one ranked candidate.
type Result struct {
	Score   float64 `json:"score"`
	Species Species `json:"species"`
}

// IdentifyResponse is the body of a successful identify call.
// Results are ordered by descending confidence, per the upstream contract.
type IdentifyResponse struct {
	BestMatch string   `json:"bestMatch"`
	Results   []Result `json:"results"`
}
