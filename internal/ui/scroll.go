package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate       = 60
	springFrequency = 8.0
	springDamping   = 1.0
	settleDistance  = 0.5
)

type scrollFrameMsg struct {
	gen int
}

// scrollAnimation moves the viewport offset toward a target line along a
// critically damped spring.
type scrollAnimation struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	running bool
	pending bool
	gen     int
}

func newScrollAnimation() scrollAnimation {
	return scrollAnimation{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
}

// retarget aims the animation at target. A stopped animation restarts from
// the current offset and needs a new frame chain.
func (a *scrollAnimation) retarget(current, target int) {
	if !a.running {
		a.pos = float64(current)
		a.vel = 0
		a.running = true
		a.pending = true
		a.gen++
	}
	a.target = float64(target)
}

// step advances one frame and returns the offset to show. done is true
// once the spring has settled on the target.
func (a *scrollAnimation) step() (offset int, done bool) {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.target-a.pos) < settleDistance && math.Abs(a.vel) < settleDistance {
		a.pos, a.vel = a.target, 0
		return int(a.target), true
	}
	return int(math.Round(a.pos)), false
}

func (a *scrollAnimation) stop() {
	a.running = false
	a.pending = false
	a.vel = 0
}

func (a *scrollAnimation) frame() tea.Cmd {
	gen := a.gen
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}
