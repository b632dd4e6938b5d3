package domain

// Talk represents a presentation. Each talk belongs to exactly one camp.
type Talk struct {
	ID       int64    `json:"id"`
	CampID   int64    `json:"camp_id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Level    int      `json:"level"`
	Speaker  *Speaker `json:"speaker,omitempty"`
}
