package main

import (
	"fmt"
	"io"

	"github.com/Estabir/hanabi-live/internal/game"
	"github.com/Estabir/hanabi-live/internal/replay"
)

// PlayersCmd prints the phrase used to refer to a group of seats.
type PlayersCmd struct {
	File  string `arg:"" name:"file" help:"Path to a replay JSON dump" type:"existingfile"`
	Seats []int  `arg:"" optional:"" name:"seat" help:"Seat indices; omit for everyone"`
}

func (cmd *PlayersCmd) Run(out io.Writer) error {
	rc, err := replay.LoadFile(cmd.File)
	if err != nil {
		return err
	}

	var indices []game.PlayerIndex
	if len(cmd.Seats) > 0 {
		indices = make([]game.PlayerIndex, len(cmd.Seats))
		for i, seat := range cmd.Seats {
			indices[i] = game.PlayerIndex(seat)
		}
	}

	_, err = fmt.Fprintln(out, game.PlayerNames(indices, rc.Metadata))
	return err
}
