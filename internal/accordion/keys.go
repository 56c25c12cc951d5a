package accordion

// Key values as reported by KeyboardEvent.key.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
)

// KeyResult describes the effect of one key press on a focused item.
type KeyResult struct {
	// Focus is the index that should hold focus after the key.
	Focus int
	// Toggled is set when the key activated the focused item.
	Toggled bool
	// Expanded is the new state of the focused item when Toggled.
	Expanded bool
	// Handled means the caller should suppress the browser default.
	Handled bool
}

var keyDirections = map[string]Direction{
	KeyArrowUp:   Prev,
	KeyArrowDown: Next,
	KeyHome:      First,
	KeyEnd:       Last,
}

// HandleKey applies key pressed while the item at index holds focus.
// Unrecognized keys leave focus where it is and report Handled=false.
func (a *Accordion) HandleKey(key string, index int) (KeyResult, error) {
	if len(a.ids) == 0 {
		return KeyResult{Focus: -1}, nil
	}
	index = clamp(index, 0, len(a.ids)-1)

	switch key {
	case KeyEnter, KeySpace:
		expanded, err := a.Activate(a.ids[index])
		if err != nil {
			return KeyResult{Focus: index}, err
		}
		return KeyResult{Focus: index, Toggled: true, Expanded: expanded, Handled: true}, nil
	}

	if dir, ok := keyDirections[key]; ok {
		return KeyResult{Focus: a.MoveFocus(dir, index), Handled: true}, nil
	}
	return KeyResult{Focus: index}, nil
}
