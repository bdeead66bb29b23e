// Package game holds the data model shared by the client: per-game metadata,
// card identities, clues, the raw action log sent by the server and the
// compact client actions used when sharing a replay.
//
// # Player names
//
// Chat and log messages refer to groups of players in natural language:
//
//	md := &game.Metadata{PlayerNames: []string{"Zed", "Amy"}}
//	game.PlayerNames([]game.PlayerIndex{0, 1}, md) // "Amy and Zed"
//	game.PlayerNames(nil, md)                      // "The players"
//
// Names are always listed alphabetically, not in seat order.
//
// # Characters
//
// The character registry is built from embedded static data. Characters()
// panics when that data is invalid, since the client cannot run without it.
// Use InitCharacters to validate an arbitrary list instead.
package game
