package replay

import "regexp"

var (
	playRegex    = regexp.MustCompile(`^(?:\[Hypo\] )?(.*)(?: plays | fails to play ).* from slot #(\d).*$`)
	discardRegex = regexp.MustCompile(`^(?:\[Hypo\] )?(.*) discards .* slot #(\d).*$`)
	clueRegex    = regexp.MustCompile(`^(?:\[Hypo\] )?.+ tells (.*) about \w+ ([A-Za-z]+|\d)s?$`)
)

// LineMatch is what a log line grammar captures: the player the line is
// about and either a slot number or a clue token.
type LineMatch struct {
	Player string
	Token  string
}

// LogLineParser recognises the log lines that correspond to actions.
type LogLineParser interface {
	// MatchPlay matches "<player> plays|fails to play ... from slot #<n>".
	MatchPlay(line string) (LineMatch, bool)
	// MatchDiscard matches "<player> discards ... slot #<n>".
	MatchDiscard(line string) (LineMatch, bool)
	// MatchClue matches "<giver> tells <player> about <count> <token>".
	MatchClue(line string) (LineMatch, bool)
}

// RegexParser parses the log lines written by the game UI. Lines may carry
// a "[Hypo] " prefix.
type RegexParser struct{}

func (RegexParser) MatchPlay(line string) (LineMatch, bool) {
	return match(playRegex, line)
}

func (RegexParser) MatchDiscard(line string) (LineMatch, bool) {
	return match(discardRegex, line)
}

func (RegexParser) MatchClue(line string) (LineMatch, bool) {
	return match(clueRegex, line)
}

func match(re *regexp.Regexp, line string) (LineMatch, bool) {
	found := re.FindStringSubmatch(line)
	if len(found) <= 2 {
		return LineMatch{}, false
	}
	return LineMatch{Player: found[1], Token: found[2]}, true
}
