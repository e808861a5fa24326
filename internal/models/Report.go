package models

// CreatedByPlaceholder stands in for the author of a record until
// authentication is wired up; every created document carries it.
const CreatedByPlaceholder = "test_user_id"

// Report is a rider-submitted service report against a route, and
// optionally a specific stop along it. Route and stop names are stored
// normalized; the type is stored exactly as submitted.
type Report struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Route     string `json:"route"`
	Stop      string `json:"stop,omitempty"`
	Timestamp string `json:"timestamp"`
	CreatedBy string `json:"createdBy"`
}

func (r Report) Doc() map[string]any {
	doc := map[string]any{
		"id":        r.ID,
		"type":      r.Type,
		"route":     r.Route,
		"timestamp": r.Timestamp,
		"createdBy": r.CreatedBy,
	}
	if r.Stop != "" {
		doc["stop"] = r.Stop
	}
	return doc
}
