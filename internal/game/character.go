package game

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Character is a detrimental character that can be assigned to a player.
type Character struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

//go:embed characters.json
var charactersJSON []byte

var (
	charactersOnce sync.Once
	characters     map[int]Character
)

// Characters returns the registry built from the embedded character data.
// It panics if the data is invalid.
func Characters() map[int]Character {
	charactersOnce.Do(func() {
		var list []Character
		if err := json.Unmarshal(charactersJSON, &list); err != nil {
			panic(fmt.Sprintf("failed to decode characters.json: %v", err))
		}
		registry, err := InitCharacters(list)
		if err != nil {
			panic(err.Error())
		}
		characters = registry
	})
	return characters
}

// InitCharacters validates a character list and indexes it by ID. A later
// entry with the same ID replaces an earlier one.
func InitCharacters(list []Character) (map[int]Character, error) {
	if len(list) == 0 {
		return nil, errors.New(`the "characters.json" file did not have any elements in it`)
	}

	registry := make(map[int]Character, len(list))
	for _, character := range list {
		if character.Name == "" {
			return nil, errors.New(`there is a character with an empty name in the "characters.json" file`)
		}

		// The first character has an ID of 0.
		if character.ID < 0 {
			return nil, fmt.Errorf("the %q character has an invalid ID", character.Name)
		}

		if character.Description == "" {
			return nil, fmt.Errorf("the %q character does not have a description", character.Name)
		}

		if character.Emoji == "" {
			return nil, fmt.Errorf("the %q character does not have an emoji", character.Name)
		}

		registry[character.ID] = character
	}

	return registry, nil
}
