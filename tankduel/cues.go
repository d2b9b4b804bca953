package tankduel

// Cues is notified of noteworthy game events, e.g. to play sounds.
type Cues interface {
	Fire(side Side)
	Hit(shooter Side)
}

// NopCues ignores every cue.
type NopCues struct{}

func (NopCues) Fire(Side) {}
func (NopCues) Hit(Side) {}
