// ABOUTME: Tolerant decoding of space payloads across server versions
// ABOUTME: Tries a fixed list of nesting shapes and falls back to empty

package docmost

import (
	"encoding/json"

	"clipper-app-api/core/domain"
)

// spaceWire mirrors a space object on the wire. Some server versions expose
// the display name under "title" instead of "name".
type spaceWire struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func (w spaceWire) toDomain() domain.Space {
	name := w.Name
	if name == "" {
		name = w.Title
	}
	if name == "" {
		name = w.Slug
	}
	return domain.Space{ID: w.ID, Name: name, Slug: w.Slug}
}

// extractSpaces finds the space array inside a listing payload. Shapes are
// tried in a fixed order: data.data, data as array, top-level array,
// data.items. None matching yields an empty list: an unrecognized shape is
// treated as "no spaces" rather than a hard failure so that newer servers
// with benign envelope changes keep working.
func extractSpaces(raw []byte) []domain.Space {
	var root struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &root); err == nil && len(root.Data) > 0 {
		var nested struct {
			Data  []spaceWire `json:"data"`
			Items []spaceWire `json:"items"`
		}
		hasNested := json.Unmarshal(root.Data, &nested) == nil

		if hasNested && nested.Data != nil {
			return convertSpaces(nested.Data)
		}

		var list []spaceWire
		if err := json.Unmarshal(root.Data, &list); err == nil && list != nil {
			return convertSpaces(list)
		}

		if hasNested && nested.Items != nil {
			return convertSpaces(nested.Items)
		}
	}

	var list []spaceWire
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return convertSpaces(list)
	}

	return []domain.Space{}
}

// decodeSpace unpacks a single created space, wrapped under "data" or bare.
func decodeSpace(raw []byte) domain.Space {
	var wrapped struct {
		Data *spaceWire `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data.toDomain()
	}

	var bare spaceWire
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare.toDomain()
	}
	return domain.Space{}
}

func convertSpaces(wires []spaceWire) []domain.Space {
	spaces := make([]domain.Space, 0, len(wires))
	for _, w := range wires {
		spaces = append(spaces, w.toDomain())
	}
	return spaces
}
