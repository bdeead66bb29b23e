// Package replay rebuilds the list of actions taken in a finished game from
// the replay state held by the client, including any hypothetical the user
// has played out on top of it.
package replay

import "github.com/Estabir/hanabi-live/internal/game"

// LogEntry is one line of the in-game action log.
type LogEntry struct {
	Turn int    `json:"turn"`
	Text string `json:"text"`
}

// GameState is a snapshot of the game after one segment. Hands hold card
// orders with the oldest card first.
type GameState struct {
	Hands [][]game.CardOrder `json:"hands"`
	Log   []LogEntry         `json:"log"`
}

// HypotheticalState is a speculative branch started from a replay. States
// has one entry per hypothetical turn; MorphedIdentities is indexed by card
// order.
type HypotheticalState struct {
	States            []GameState            `json:"states"`
	MorphedIdentities []game.MorphedIdentity `json:"morphedIdentities"`
}

// Log returns the action log of the latest hypothetical state.
func (h *HypotheticalState) Log() []LogEntry {
	if h == nil || len(h.States) == 0 {
		return nil
	}
	return h.States[len(h.States)-1].Log
}

// Morph returns the hypothetical identity of the card with the given order.
func (h *HypotheticalState) Morph(order int) (game.CardIdentity, bool) {
	if h == nil || order < 0 || order >= len(h.MorphedIdentities) {
		return game.CardIdentity{}, false
	}
	return h.MorphedIdentities[order].Identity()
}

// ReplayState is the replay being reviewed. Segment is the turn the user is
// currently looking at.
type ReplayState struct {
	Actions      game.ActionList    `json:"actions"`
	States       []GameState        `json:"states"`
	Segment      int                `json:"segment"`
	Hypothetical *HypotheticalState `json:"hypothetical"`
}

// HypotheticalLog returns the hypothetical log lines after the current
// segment. It reports false when there is no hypothetical, the segment is
// negative or the log does not reach past it.
func (rs *ReplayState) HypotheticalLog() ([]LogEntry, bool) {
	if rs.Hypothetical == nil {
		return nil, false
	}
	log := rs.Hypothetical.Log()
	if rs.Segment < 0 || rs.Segment >= len(log) {
		return nil, false
	}
	return log[rs.Segment+1:], true
}

// State is the client's view of a game.
type State struct {
	Finished       bool                `json:"finished"`
	CardIdentities []game.CardIdentity `json:"cardIdentities"`
	Replay         ReplayState         `json:"replay"`
}

// Context bundles everything needed to reconstruct and export a game. State
// is nil when no game is loaded.
type Context struct {
	State    *State         `json:"state"`
	Metadata *game.Metadata `json:"metadata"`
	Variant  *game.Variant  `json:"variant"`
}
