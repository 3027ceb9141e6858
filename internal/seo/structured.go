// Package seo builds the schema.org descriptors embedded in the page for
// search engines. Each descriptor mirrors the visible content it sits next
// to and is derived from the same registry entries.
package seo

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/miix-automations/website/internal/content"
)

const schemaContext = "https://schema.org"

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

func NewOrganization(name, url string) Organization {
	return Organization{Type: "Organization", Name: name, URL: url}
}

// ItemList is a schema.org ItemList.
type ItemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one element of an ItemList. Service items fill Provider,
// article items fill Headline, ArticleSection, About, Author and Publisher.
type ListItem struct {
	Type           string        `json:"@type"`
	Position       int           `json:"position"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Provider       *Organization `json:"provider,omitempty"`
	Headline       string        `json:"headline,omitempty"`
	ArticleSection string        `json:"articleSection,omitempty"`
	About          string        `json:"about,omitempty"`
	Author         *Organization `json:"author,omitempty"`
	Publisher      *Organization `json:"publisher,omitempty"`
}

// ServicesList describes the service catalogue as an ItemList of Service.
func ServicesList(org Organization, services []content.Entry) ItemList {
	items := make([]ListItem, len(services))
	for i, s := range services {
		provider := org
		items[i] = ListItem{
			Type:        "Service",
			Position:    i + 1,
			Name:        s.Title,
			Description: s.Description,
			Provider:    &provider,
		}
	}
	return newItemList(org.Name+" Services", items)
}

// CaseStudiesList describes the case studies as an ItemList of Article.
func CaseStudiesList(org Organization, studies []content.Entry) ItemList {
	items := make([]ListItem, len(studies))
	for i, s := range studies {
		author, publisher := org, org
		items[i] = ListItem{
			Type:           "Article",
			Position:       i + 1,
			Name:           s.Title,
			Headline:       s.Title,
			ArticleSection: "Case Study",
			About:          s.Category,
			Description:    s.Description,
			Author:         &author,
			Publisher:      &publisher,
		}
	}
	return newItemList(org.Name+" Case Studies", items)
}

func newItemList(name string, items []ListItem) ItemList {
	return ItemList{
		Context:         schemaContext,
		Type:            "ItemList",
		Name:            name,
		NumberOfItems:   len(items),
		ItemListElement: items,
	}
}

// JSONLD renders v as an application/ld+json script element.
// encoding/json escapes <, > and & so the payload cannot close the element
// early.
func JSONLD(v any) (g.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal structured data: %w", err)
	}
	return h.Script(h.Type("application/ld+json"), g.Raw(string(data))), nil
}
