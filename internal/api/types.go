// Package api defines the JSON request and response types shared by the HTTP handlers.
package api

import "time"

// ErrorResponse is the common error body. Details carries upstream error text
// when one exists; RawResponse carries an unparseable upstream payload for
// diagnostics.
type ErrorResponse struct {
	Error       string `json:"error"`
	Details     string `json:"details,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// IdentificationCandidateResponse is one upstream candidate, in upstream order.
type IdentificationCandidateResponse struct {
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	Score          float64  `json:"score"`
}

// IdentificationResultsResponse mirrors the nested results block the mobile
// client expects: the upstream best-match field plus the candidate list.
type IdentificationResultsResponse struct {
	BestMatch string                            `json:"best_match"`
	Results   []IdentificationCandidateResponse `json:"results"`
}

// PurchaseLinkResponse is one shopping-search link derived from the identified name.
type PurchaseLinkResponse struct {
	SiteName string `json:"site_name"`
	URL      string `json:"url"`
}

// IdentifyResponse is the full payload of POST /api/identify.
type IdentifyResponse struct {
	BestMatchScientificName string                        `json:"best_match_scientific_name"`
	BestMatchCommonNames    string                        `json:"best_match_common_names"`
	Results                 IdentificationResultsResponse `json:"results"`
	PurchaseLinks           []PurchaseLinkResponse        `json:"purchase_links"`
}

// PlantDetailsRequest is the body of POST /api/plant-details.
type PlantDetailsRequest struct {
	PlantName string `json:"plant_name" binding:"required"`
}

// PlantDetailsResponse is the structured descriptive text for a plant.
type PlantDetailsResponse struct {
	Introduction string   `json:"introduction"`
	History      string   `json:"history"`
	Facts        []string `json:"facts"`
	Usage        []string `json:"usage"`
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a signed JWT.
type TokenResponse struct {
	Token string `json:"token"`
}

// PlantRecordResponse is one stored identification record.
type PlantRecordResponse struct {
	ID                      uint      `json:"id"`
	BestMatchScientificName string    `json:"best_match_scientific_name"`
	BestMatchCommonNames    string    `json:"best_match_common_names"`
	Results                 string    `json:"results"`
	CreatedAt               time.Time `json:"created_at"`
}
