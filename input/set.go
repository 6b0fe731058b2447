package input

import "strings"

// Set is the set of actions active during one tick.
type Set uint8

const knownMask = Set(1<<ActionCount - 1)

// NewSet builds a set, silently dropping unrecognized actions.
func NewSet(actions ...Action) Set {
	var s Set
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s Set) Has(a Action) bool {
	return a.Valid() && s&(1<<a) != 0
}

func (s Set) With(a Action) Set {
	if !a.Valid() {
		return s
	}
	return s | 1<<a
}

func (s Set) Without(a Action) Set {
	if !a.Valid() {
		return s
	}
	return s &^ (1 << a)
}

// Known strips bits that do not name an action.
func (s Set) Known() Set { return s & knownMask }

func (s Set) Empty() bool { return s.Known() == 0 }

// Actions lists the members in declaration order.
func (s Set) Actions() []Action {
	var out []Action
	for a := Action(0); a < ActionCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s Set) String() string {
	names := make([]string, 0, ActionCount)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Normalize resolves conflicting presses the way the sampler must before
// pushing: Left+Right cancel to neutral and Crouch+Jump becomes Jump.
func Normalize(s Set) Set {
	s = s.Known()
	if s.Has(MoveLeft) && s.Has(MoveRight) {
		s = s.Without(MoveLeft).Without(MoveRight)
	}
	if s.Has(Crouch) && s.Has(Jump) {
		s = s.Without(Crouch)
	}
	return s
}
