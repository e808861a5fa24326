package models

// Route is a named service path with its ordered stops. Name and stop
// strings are stored normalized.
type Route struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Stops     []string `json:"stops"`
	Active    bool     `json:"active"`
	CreatedBy string   `json:"createdBy"`
}

func (r Route) Doc() map[string]any {
	stops := make([]any, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = s
	}
	return map[string]any{
		"id":        r.ID,
		"name":      r.Name,
		"stops":     stops,
		"active":    r.Active,
		"createdBy": r.CreatedBy,
	}
}
