package models

// ModelInfo describes one model entry from GET /models.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`
}

// ModelList is the response body of GET /models.
type ModelList struct {
	Object string      `json:"object,omitempty"`
	Data   []ModelInfo `json:"data"`
}

// Names returns the bare model identifiers in catalog order.
func (l ModelList) Names() []string {
	names := make([]string, 0, len(l.Data))
	for _, m := range l.Data {
		names = append(names, m.ID)
	}
	return names
}

// Contains reports whether the list carries a model with the given id.
func (l ModelList) Contains(id string) bool {
	for _, m := range l.Data {
		if m.ID == id {
			return true
		}
	}
	return false
}
