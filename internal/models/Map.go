package models

// Map is an uploaded transit map, stored as a link to the asset.
type Map struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (m Map) Doc() map[string]any {
	return map[string]any{
		"id":  m.ID,
		"url": m.URL,
	}
}
