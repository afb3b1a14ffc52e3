package utils

import "net/url"

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapSearchLink derives a map deep link from a free-text place name. Purely
// presentational; an empty name yields an empty link rather than a link to
// nowhere.
func MapSearchLink(name string) string {
	if name == "" {
		return ""
	}
	return mapSearchBase + url.QueryEscape(name)
}
