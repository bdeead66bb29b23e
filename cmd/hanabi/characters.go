package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Estabir/hanabi-live/internal/game"
)

// CharactersCmd prints the character registry.
type CharactersCmd struct {
	ID *int `help:"Only show the character with this ID"`
}

func (cmd *CharactersCmd) Run(g *Globals, out io.Writer) error {
	cfg, _, closeLog, err := g.setup(nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	characters := game.Characters()

	list := make([]game.Character, 0, len(characters))
	if cmd.ID != nil {
		c, ok := characters[*cmd.ID]
		if !ok {
			return fmt.Errorf("no character with ID %d", *cmd.ID)
		}
		list = append(list, c)
	} else {
		for _, c := range characters {
			list = append(list, c)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	renderer := lipgloss.NewRenderer(out)
	if cfg.UI.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderCharacters(out, renderer, list)
}

func renderCharacters(out io.Writer, r *lipgloss.Renderer, list []game.Character) error {
	header := r.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	name := r.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	description := r.NewStyle().Foreground(lipgloss.Color("12"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		header.Render("id"),
		header.Render(""),
		header.Render("name"),
		header.Render("description"))
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			c.ID,
			c.Emoji,
			name.Render(c.Name),
			description.Render(c.Description))
	}
	return w.Flush()
}
