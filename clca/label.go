package clca

import (
	"strconv"

	"github.com/pkg/errors"
)

// String renders the label for tracing: the text while unresolved,
// "#color" when matched and "s" (singular) when unmatched.
func (l Label) String() string {
	switch l.State {
	case FrozenMatched:
		return "#" + strconv.FormatUint(l.Color, 10)
	case FrozenUnmatched:
		return "s"
	default:
		return l.Text
	}
}

// freezeMatched moves an Unresolved label to FrozenMatched(color).
func (l *Label) freezeMatched(color uint64) error {
	if l.State.Frozen() {
		return errors.Wrapf(ErrFrozenTransition, "%s → matched #%d", l.State, color)
	}
	*l = Label{State: FrozenMatched, Color: color}
	return nil
}

// freezeUnmatched moves an Unresolved label to FrozenUnmatched.
func (l *Label) freezeUnmatched() error {
	if l.State.Frozen() {
		return errors.Wrapf(ErrFrozenTransition, "%s → unmatched", l.State)
	}
	*l = Label{State: FrozenUnmatched}
	return nil
}

// refine replaces the text of an Unresolved label.
func (l *Label) refine(text string) error {
	if l.State.Frozen() {
		return errors.Wrapf(ErrFrozenTransition, "%s → unresolved %q", l.State, text)
	}
	l.Text = text
	return nil
}

// snapshot copies labels for a RoundInfo.
func snapshot(labels []Label) []Label {
	return append([]Label(nil), labels...)
}
