// Package viewer draws arena frames in the terminal.
package viewer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"ranks/internal/arena"
	"ranks/internal/telemetry"
)

var palette = []tcell.Color{
	tcell.ColorGreen, tcell.ColorYellow, tcell.ColorAqua,
	tcell.ColorFuchsia, tcell.ColorOrange, tcell.ColorBlue,
}

type Viewer struct {
	screen tcell.Screen
	log    *log.Logger
	blip   *blip
	shots  int
}

// New opens the terminal. With sound set, a short tone plays whenever a tank
// fires; a machine without audio just stays silent.
func New(sound bool, logger *log.Logger) (*Viewer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	v := NewWithScreen(s, logger)
	if sound {
		b, err := newBlip()
		if err != nil {
			v.log.Warn("audio init failed", "err", err)
		}
		v.blip = b
	}
	return v, nil
}

// NewWithScreen wraps an initialised screen.
func NewWithScreen(s tcell.Screen, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &Viewer{screen: s, log: logger}
}

func (v *Viewer) Close() { v.screen.Fini() }

// Draw renders f. The last row is the status line.
func (v *Viewer) Draw(f arena.Frame) {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	field := h - 1

	plain := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, t := range f.Tanks {
		for _, p := range t.Route {
			if c, r, ok := Project(p[0], p[1], f.Size, w, field); ok {
				s.SetContent(c, r, '+', nil, plain)
			}
		}
	}
	for _, b := range f.Bullets {
		if c, r, ok := Project(b.X, b.Y, f.Size, w, field); ok {
			s.SetContent(c, r, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}

	shots := 0
	status := fmt.Sprintf("tick %d", f.Tick)
	for i, t := range f.Tanks {
		shots += t.Shots
		style := tcell.StyleDefault.Foreground(palette[i%len(palette)])
		glyph := '▲'
		if t.Dead {
			glyph = 'x'
			style = style.Dim(true)
		}
		if c, r, ok := Project(t.X, t.Y, f.Size, w, field); ok {
			s.SetContent(c, r, glyph, nil, style)
		}
		status += fmt.Sprintf("  %s heat %.0f shots %d legs %d", t.Name, t.Heat, t.Shots, t.Legs)
	}
	v.text(0, h-1, status, tcell.StyleDefault.Reverse(true))
	s.Show()

	if shots > v.shots {
		v.blip.play()
	}
	v.shots = shots
}

func (v *Viewer) text(x, y int, str string, style tcell.Style) {
	w, _ := v.screen.Size()
	for _, r := range str {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func quits(k tcell.Key, r rune) bool {
	return k == tcell.KeyEscape || k == tcell.KeyCtrlC || (k == tcell.KeyRune && r == 'q')
}

// Run draws frames as they arrive until the user quits, frames is closed or
// ctx is done. The last frame stays on screen until the user quits.
func (v *Viewer) Run(ctx context.Context, frames <-chan arena.Frame) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-frames:
			if !ok {
				frames = nil
				continue
			}
			v.Draw(f)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quits(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		}
	}
}
