package tags

import "fmt"

// TagDef represents a metadata tag definition
type TagDef struct {
	ID          string            // Tag identifier (hex ID, e.g. "0x011A")
	Name        string            // Human-readable name
	Description string            // Tag description
	Format      string            // Data format (e.g., "int16u", "rational64u")
	Values      map[string]string // Value mappings (for enumerated types)
}

// AllTags consolidates all tag tables
var AllTags = make(map[string]map[string]TagDef)

// RegisterTagTable registers a tag table
func RegisterTagTable(namespace string, tags map[string]TagDef) {
	AllTags[namespace] = tags
}

// GetTag retrieves a tag definition by namespace and ID
func GetTag(namespace, id string) (TagDef, bool) {
	if table, ok := AllTags[namespace]; ok {
		tag, found := table[id]
		return tag, found
	}
	return TagDef{}, false
}

// Key formats a numeric tag ID the way tag tables are keyed
func Key(id uint16) string {
	return fmt.Sprintf("0x%04X", id)
}

// Name returns the registered name of a numeric tag, or its hex key when
// the tag is unknown.
func Name(namespace string, id uint16) string {
	if tag, ok := GetTag(namespace, Key(id)); ok {
		return tag.Name
	}
	return Key(id)
}

// ValueName maps an enumerated tag value to its label
func ValueName(namespace string, id uint16, value int) string {
	v := fmt.Sprintf("%d", value)
	if tag, ok := GetTag(namespace, Key(id)); ok {
		if label, ok := tag.Values[v]; ok {
			return label
		}
	}
	return v
}
