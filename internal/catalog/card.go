// Package catalog holds the read-only card catalog types shared by the
// collection and wishlist read paths.
package catalog

import "strings"

type Card struct {
	CardID   string `json:"cardID"`
	Name     string `json:"name"`
	PackName string `json:"packName"`
	Rarity   string `json:"rarity"`
	Type     string `json:"type"`
	ImageURL string `json:"imageURL"`
}

// Filter narrows a card listing. Empty fields are ignored; set fields are AND-ed.
type Filter struct {
	Rarity       string
	Type         string
	PackName     string
	NameContains string
}

// NamePattern returns an ILIKE pattern matching NameContains as a literal
// substring, or "" when no name filter is set.
func (f Filter) NamePattern() string {
	if f.NameContains == "" {
		return ""
	}

	return "%" + escapeLike(f.NameContains) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
