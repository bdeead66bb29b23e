package game

import (
	"encoding/json"
	"fmt"
)

// ActionKind is the wire name of a raw game action.
type ActionKind string

const (
	KindPlay         ActionKind = "play"
	KindDiscard      ActionKind = "discard"
	KindClue         ActionKind = "clue"
	KindDraw         ActionKind = "draw"
	KindStrike       ActionKind = "strike"
	KindTurn         ActionKind = "turn"
	KindStatus       ActionKind = "status"
	KindGameOver     ActionKind = "gameOver"
	KindCardIdentity ActionKind = "cardIdentity"
)

// Action is one entry of the action log the server sends for a game.
type Action interface {
	Kind() ActionKind
}

// ActionPlay is a successful play.
type ActionPlay struct {
	PlayerIndex PlayerIndex `json:"playerIndex"`
	Order       CardOrder   `json:"order"`
	SuitIndex   SuitIndex   `json:"suitIndex"`
	Rank        Rank        `json:"rank"`
}

// ActionDiscard is a discard. Failed is set when the card was a misplay.
type ActionDiscard struct {
	PlayerIndex PlayerIndex `json:"playerIndex"`
	Order       CardOrder   `json:"order"`
	SuitIndex   SuitIndex   `json:"suitIndex"`
	Rank        Rank        `json:"rank"`
	Failed      bool        `json:"failed"`
}

// ActionClue is a clue given to Target.
type ActionClue struct {
	Clue           Clue        `json:"clue"`
	Giver          PlayerIndex `json:"giver"`
	List           []CardOrder `json:"list"`
	Target         PlayerIndex `json:"target"`
	Turn           int         `json:"turn"`
	IgnoreNegative bool        `json:"ignoreNegative"`
}

// ActionDraw is a card drawn from the deck. SuitIndex and Rank are -1 when
// the identity is hidden from the viewer.
type ActionDraw struct {
	PlayerIndex PlayerIndex `json:"playerIndex"`
	Order       CardOrder   `json:"order"`
	SuitIndex   SuitIndex   `json:"suitIndex"`
	Rank        Rank        `json:"rank"`
}

// ActionStrike records a strike caused by the card with the given order.
type ActionStrike struct {
	Num   int       `json:"num"`
	Order CardOrder `json:"order"`
	Turn  int       `json:"turn"`
}

// ActionTurn marks the start of a turn.
type ActionTurn struct {
	Num                int         `json:"num"`
	CurrentPlayerIndex PlayerIndex `json:"currentPlayerIndex"`
}

// ActionStatus carries the clue count and score after an action.
type ActionStatus struct {
	Clues    int `json:"clues"`
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// ActionGameOver ends the game.
type ActionGameOver struct {
	EndCondition int         `json:"endCondition"`
	PlayerIndex  PlayerIndex `json:"playerIndex"`
	Votes        []int       `json:"votes"`
}

// ActionCardIdentity reveals a card identity to the viewer.
type ActionCardIdentity struct {
	PlayerIndex PlayerIndex `json:"playerIndex"`
	Order       CardOrder   `json:"order"`
	SuitIndex   SuitIndex   `json:"suitIndex"`
	Rank        Rank        `json:"rank"`
}

// UnknownAction keeps an action type this client does not model.
type UnknownAction struct {
	Type string
	Raw  json.RawMessage
}

func (ActionPlay) Kind() ActionKind         { return KindPlay }
func (ActionDiscard) Kind() ActionKind      { return KindDiscard }
func (ActionClue) Kind() ActionKind         { return KindClue }
func (ActionDraw) Kind() ActionKind         { return KindDraw }
func (ActionStrike) Kind() ActionKind       { return KindStrike }
func (ActionTurn) Kind() ActionKind         { return KindTurn }
func (ActionStatus) Kind() ActionKind       { return KindStatus }
func (ActionGameOver) Kind() ActionKind     { return KindGameOver }
func (ActionCardIdentity) Kind() ActionKind { return KindCardIdentity }
func (a UnknownAction) Kind() ActionKind    { return ActionKind(a.Type) }

// DecodeAction decodes a single action using its "type" field.
func DecodeAction(data []byte) (Action, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode action type: %w", err)
	}

	var action Action
	var err error
	switch ActionKind(envelope.Type) {
	case KindPlay:
		action, err = decodeInto[ActionPlay](data)
	case KindDiscard:
		action, err = decodeInto[ActionDiscard](data)
	case KindClue:
		action, err = decodeInto[ActionClue](data)
	case KindDraw:
		action, err = decodeInto[ActionDraw](data)
	case KindStrike:
		action, err = decodeInto[ActionStrike](data)
	case KindTurn:
		action, err = decodeInto[ActionTurn](data)
	case KindStatus:
		action, err = decodeInto[ActionStatus](data)
	case KindGameOver:
		action, err = decodeInto[ActionGameOver](data)
	case KindCardIdentity:
		action, err = decodeInto[ActionCardIdentity](data)
	default:
		raw := make(json.RawMessage, len(data))
		copy(raw, data)
		return UnknownAction{Type: envelope.Type, Raw: raw}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q action: %w", envelope.Type, err)
	}
	return action, nil
}

func decodeInto[T Action](data []byte) (Action, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ActionList is an action log that decodes each element by its type.
type ActionList []Action

// UnmarshalJSON implements json.Unmarshaler.
func (l *ActionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	actions := make(ActionList, 0, len(raw))
	for i, r := range raw {
		action, err := DecodeAction(r)
		if err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, action)
	}
	*l = actions
	return nil
}
