package config

// AnimationDef selects how a status is drawn: which sprite sheet, the pixel
// width at which the frame x wraps, and the ticks between frame advances.
type AnimationDef struct {
	Sheet int
	Wrap  int
	Rate  int
}

// StatusAnimations maps every status to its presentation record.
// Running's rate is only the slow cycle; see AnimationConfig.FastRunSpeed.
var StatusAnimations = [StatusCount]AnimationDef{
	Idle:      {Sheet: 0, Wrap: 768, Rate: 5},
	Running:   {Sheet: 1, Wrap: 1024, Rate: 2},
	Blocking:  {Sheet: 2, Wrap: 256, Rate: 5},
	Jumping:   {Sheet: 3, Wrap: 1536, Rate: 1},
	Hitstun:   {Sheet: 4, Wrap: 256, Rate: 3},
	Blockstun: {Sheet: 5, Wrap: 256, Rate: 2},
	Attacking: {Sheet: 6, Wrap: 768, Rate: 3},
}

// FastRunRate is the run cycle rate above AnimationConfig.FastRunSpeed.
const FastRunRate = 1
