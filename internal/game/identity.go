package game

// PlayerIndex is a seat number, starting at 0.
type PlayerIndex int

// CardOrder is the stable number given to a card when it is dealt. It does
// not change when the card moves around a hand.
type CardOrder int

// SuitIndex is an index into a variant's suits.
type SuitIndex int

// Rank is a card rank. The START rank used by some variants is 7.
type Rank int

// CardIdentity is the true suit and rank of a dealt card.
type CardIdentity struct {
	SuitIndex SuitIndex `json:"suitIndex"`
	Rank      Rank      `json:"rank"`
}

// MorphedIdentity is the identity a hypothetical gives a card. Either field
// is nil when the hypothetical left it unchanged.
type MorphedIdentity struct {
	SuitIndex *SuitIndex `json:"suitIndex"`
	Rank      *Rank      `json:"rank"`
}

// Identity returns the morphed identity when both fields are set.
func (m MorphedIdentity) Identity() (CardIdentity, bool) {
	if m.SuitIndex == nil || m.Rank == nil {
		return CardIdentity{}, false
	}
	return CardIdentity{SuitIndex: *m.SuitIndex, Rank: *m.Rank}, true
}

// SuitRankTuple is one candidate identity written in a card note.
type SuitRankTuple struct {
	SuitIndex SuitIndex `json:"suitIndex"`
	Rank      Rank      `json:"rank"`
}
