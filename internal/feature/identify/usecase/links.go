package usecase

import (
	"fmt"
	"net/url"

	"github.com/MiranSiddique/FLORO/internal/feature/identify/domain/entity"
)

// PurchaseSite is one external shopping-search endpoint. URLTemplate must
// contain a single %s placeholder for the query-encoded plant name.
type PurchaseSite struct {
	Name        string
	URLTemplate string
}

// DefaultPurchaseSites is the fixed, ordered set of shopping-search endpoints.
var DefaultPurchaseSites = []PurchaseSite{
	{Name: "Google Shopping", URLTemplate: "https://www.google.com/search?tbm=shop&q=%s"},
	{Name: "Amazon", URLTemplate: "https://www.amazon.in/s?k=%s"},
	{Name: "Etsy", URLTemplate: "https://www.etsy.com/search?q=%s"},
}

// synthesizePurchaseLinks derives shopping-search links from the identified
// name. The display name is chosen by trying, in order: the top candidate's
// first common name, the upstream-reported best match, the top candidate's
// scientific name. No usable name yields no links, which is not an error.
func synthesizePurchaseLinks(sites []PurchaseSite, top entity.IdentificationCandidate, upstreamBestMatch string) []entity.PurchaseLink {
	var name string
	switch {
	case len(top.CommonNames) > 0 && top.CommonNames[0] != "":
		name = top.CommonNames[0]
	case upstreamBestMatch != "":
		name = upstreamBestMatch
	default:
		name = top.ScientificName
	}
	if name == "" {
		return nil
	}

	encoded := url.QueryEscape(name)
	links := make([]entity.PurchaseLink, 0, len(sites))
	for _, s := range sites {
		links = append(links, entity.PurchaseLink{
			SiteName: s.Name,
			URL:      fmt.Sprintf(s.URLTemplate, encoded),
		})
	}
	return links
}
