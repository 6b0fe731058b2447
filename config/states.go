package config

// Status is the discrete gameplay state of a fighter.
type Status int

const (
	Idle Status = iota
	Running
	Blocking
	Jumping
	Hitstun
	Blockstun
	Attacking
	StatusCount // Must be last - used for array sizing
)

var statusNames = [StatusCount]string{
	Idle:      "Idle",
	Running:   "Running",
	Blocking:  "Blocking",
	Jumping:   "Jumping",
	Hitstun:   "Hitstun",
	Blockstun: "Blockstun",
	Attacking: "Attacking",
}

func (s Status) String() string {
	if s < 0 || s >= StatusCount {
		return "Unknown"
	}
	return statusNames[s]
}

// Direction is the way a fighter faces.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "Left"
	}
	return "Right"
}

// Flip reports whether sprites drawn for this direction are mirrored.
func (d Direction) Flip() bool { return d == DirectionLeft }
