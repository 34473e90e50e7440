package dat

// DAT is a frozen double-array trie for hyphenation pattern keys.
// - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
// - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
// - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Terminal states:
//   - If Terminal[s] != 0, the key spelled by the path to s is a pattern, and
//     Terminal[s]-1 is the pattern's id in the caller's pattern store.
//
// Mapping:
//   - MapPaged is a BMP mapping from UTF-16 code unit (0..65535) to dense
//     alphabet ID. 0 means "not part of the pattern alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Terminal holds pattern id + 1 for terminal states, 0 otherwise.
	Terminal []int32 // len == N

	// MapPaged maps BMP code units to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Pattern returns the pattern id stored at a terminal state.
func (d *DAT) Pattern(state uint32) (int, bool) {
	if int(state) >= len(d.Terminal) || d.Terminal[state] == 0 {
		return 0, false
	}
	return int(d.Terminal[state] - 1), true
}

// Dense maps a BMP code unit to a dense alphabet ID.
// Returns 0 if the code unit is not in the alphabet.
func (d *DAT) Dense(bmp uint16) uint16 { return d.MapPaged.Dense(bmp) }

// Walk follows the runes of s from the root and calls visit for every
// terminal state on the way, i.e. for every stored key which is a prefix
// of s. Walking stops at the first rune without a transition.
func (d *DAT) Walk(s string, visit func(patternID int)) {
	state := d.Root
	for _, r := range s {
		c := d.MapPaged.Lookup(r)
		if c == 0 {
			return
		}
		next, ok := d.Transition(state, c)
		if !ok {
			return
		}
		state = next
		if id, ok := d.Pattern(state); ok {
			visit(id)
		}
	}
}
