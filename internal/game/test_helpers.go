package game

// Helpers to build actions and metadata with a compact syntax. For use in
// tests.

// TestMetadataOption configures test metadata creation
type TestMetadataOption func(*Metadata)

// WithPlayerNames sets the player names and the matching player count.
func WithPlayerNames(names ...string) TestMetadataOption {
	return func(md *Metadata) {
		md.PlayerNames = names
		md.Options.NumPlayers = len(names)
	}
}

// WithVariantName sets the variant the game was played with.
func WithVariantName(name string) TestMetadataOption {
	return func(md *Metadata) { md.Options.VariantName = name }
}

// WithOurPlayerIndex sets the seat we are viewing from.
func WithOurPlayerIndex(index PlayerIndex) TestMetadataOption {
	return func(md *Metadata) { md.OurPlayerIndex = index }
}

// NewTestMetadata creates metadata for a three player "No Variant" game.
func NewTestMetadata(opts ...TestMetadataOption) *Metadata {
	md := &Metadata{
		OurUsername: "Alice",
		Options: Options{
			NumPlayers:  3,
			VariantName: "No Variant",
		},
		PlayerNames: []string{"Alice", "Bob", "Cathy"},
	}
	for _, opt := range opts {
		opt(md)
	}
	return md
}

func TestPlay(playerIndex PlayerIndex, order int, suitIndex SuitIndex, rank Rank) ActionPlay {
	return ActionPlay{
		PlayerIndex: playerIndex,
		Order:       CardOrder(order),
		SuitIndex:   suitIndex,
		Rank:        rank,
	}
}

func TestDiscard(playerIndex PlayerIndex, order int, suitIndex SuitIndex, rank Rank, failed bool) ActionDiscard {
	return ActionDiscard{
		PlayerIndex: playerIndex,
		Order:       CardOrder(order),
		SuitIndex:   suitIndex,
		Rank:        rank,
		Failed:      failed,
	}
}

func TestColorClue(value int, giver PlayerIndex, list []int, target PlayerIndex, turn int) ActionClue {
	return testClue(ColorClueType, value, giver, list, target, turn)
}

func TestRankClue(value int, giver PlayerIndex, list []int, target PlayerIndex, turn int) ActionClue {
	return testClue(RankClueType, value, giver, list, target, turn)
}

func testClue(clueType ClueType, value int, giver PlayerIndex, list []int, target PlayerIndex, turn int) ActionClue {
	orders := make([]CardOrder, len(list))
	for i, order := range list {
		orders[i] = CardOrder(order)
	}
	return ActionClue{
		Clue:   Clue{Type: clueType, Value: value},
		Giver:  giver,
		List:   orders,
		Target: target,
		Turn:   turn,
	}
}

// TestDraw builds a draw with a hidden identity.
func TestDraw(playerIndex PlayerIndex, order int) ActionDraw {
	return ActionDraw{
		PlayerIndex: playerIndex,
		Order:       CardOrder(order),
		SuitIndex:   -1,
		Rank:        -1,
	}
}

func TestStrike(num int, order int, turn int) ActionStrike {
	return ActionStrike{Num: num, Order: CardOrder(order), Turn: turn}
}

func TestTurn(num int, currentPlayerIndex PlayerIndex) ActionTurn {
	return ActionTurn{Num: num, CurrentPlayerIndex: currentPlayerIndex}
}
