package termview

import (
	"github.com/gdamore/tcell"
)

// HandleEvent applies ev and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'c', 'q':
				return true, nil
			case 'r':
				return false, v.Regenerate()
			case 't':
				v.ToggleRegions()
			}
		}
	}
	return false, nil
}

// Loop draws and handles events until a quit key, an error, or the screen
// being finalized.
func (v *Viewer) Loop() error {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit, err := v.HandleEvent(ev)
		if err != nil || quit {
			return err
		}
	}
}

// Run opens the terminal, shows gen(seed) and runs the event loop. The
// terminal is restored before Run returns.
func Run(gen Generator, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v, err := New(screen, gen, seed)
	if err != nil {
		return err
	}
	return v.Loop()
}
