package ui

// HUD holds the state behind the crosshair overlay: the interaction prompt
// and the "Locked" flash. No rendering happens here; the front-end reads the
// fields between frames.
type HUD struct {
	prompt     string
	lockedTime float64
}

const lockedFlashTime = 1.2

// ShowPrompt sets the interaction prompt. An empty string hides it.
func (h *HUD) ShowPrompt(text string) {
	h.prompt = text
}

// Prompt returns the current interaction prompt.
func (h *HUD) Prompt() string {
	return h.prompt
}

// ShowLocked flashes the "Locked" label.
func (h *HUD) ShowLocked() {
	h.lockedTime = lockedFlashTime
}

// Locked reports whether the "Locked" label is visible.
func (h *HUD) Locked() bool {
	return h.lockedTime > 0
}

// Update decays the flash timer.
func (h *HUD) Update(dt float64) {
	if h.lockedTime > 0 {
		h.lockedTime -= dt
	}
}
