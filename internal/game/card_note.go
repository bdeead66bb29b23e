package game

// CardNote is what a player has written about one card. The flags are
// independent of each other and of Possibilities.
type CardNote struct {
	// Possibilities lists the identities named in the note, or is empty.
	Possibilities []SuitRankTuple `json:"possibilities"`

	KnownTrash      bool   `json:"knownTrash"`
	NeedsFix        bool   `json:"needsFix"`
	QuestionMark    bool   `json:"questionMark"`
	ExclamationMark bool   `json:"exclamationMark"`
	ChopMoved       bool   `json:"chopMoved"`
	Finessed        bool   `json:"finessed"`
	Blank           bool   `json:"blank"`
	Unclued         bool   `json:"unclued"`
	Clued           bool   `json:"clued"`
	Text            string `json:"text"`
}

// HasPossibility reports whether the note names the given identity.
func (n CardNote) HasPossibility(suitIndex SuitIndex, rank Rank) bool {
	for _, p := range n.Possibilities {
		if p.SuitIndex == suitIndex && p.Rank == rank {
			return true
		}
	}
	return false
}
