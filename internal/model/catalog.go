package model

// VoiceCatalog is the ordered list of voice identifiers offered to the user.
// It is replaced in full on every load.
type VoiceCatalog []string

// Contains reports whether voice is in the catalog
func (c VoiceCatalog) Contains(voice string) bool {
	for _, v := range c {
		if v == voice {
			return true
		}
	}
	return false
}

// First returns the first voice or "" for an empty catalog
func (c VoiceCatalog) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Pick returns preferred if present, otherwise the first entry
func (c VoiceCatalog) Pick(preferred string) string {
	if preferred != "" && c.Contains(preferred) {
		return preferred
	}
	return c.First()
}
