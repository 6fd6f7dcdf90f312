package entity

// Mark is the content of a single board cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

// Opponent - returns the rival of a player mark. MarkEmpty has no rival
// and is returned unchanged.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}
