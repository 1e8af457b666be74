// Package entity defines the domain models for the details feature.
package entity

// PlantDetails is the structured descriptive text for a plant, parsed from the
// JSON document the language model is instructed to return.
type PlantDetails struct {
	Introduction string   `json:"introduction"`
	History      string   `json:"history"`
	Facts        []string `json:"facts"`
	Usage        []string `json:"usage"`
}
