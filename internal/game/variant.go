package game

// Color is a clue colour offered by a variant.
type Color struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Fill         string `json:"fill,omitempty"`
}

// Variant is the subset of variant data the client needs to interpret a
// replay. ClueColors is ordered; clue values index into it.
type Variant struct {
	Name       string  `json:"name"`
	ClueColors []Color `json:"clueColors"`
	ClueRanks  []int   `json:"clueRanks,omitempty"`
}
