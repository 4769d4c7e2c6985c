package postmenu

import (
	"errors"
	"fmt"
)

// ErrMalformedEntry is returned by Dispatch for an entry without a usable action.
var ErrMalformedEntry = errors.New("menu entry has no action")

// Dispatcher performs the side effects of a selected entry. Implementations
// live at the edge: an HTTP response writer, a CLI, a test recorder.
type Dispatcher interface {
	Navigate(url string)
	SetActiveTool(tool Tool)
	CopyToClipboard(text string) error
	Notify(message string)
}

// Dispatch activates d once. A clipboard failure is returned and suppresses
// the notification; the caller decides whether to log it.
func Dispatch(d Descriptor, env Dispatcher) error {
	switch a := d.Action.(type) {
	case Navigate:
		env.Navigate(a.URL)
		return nil
	case Custom:
		if a.Href != "" {
			env.Navigate(a.Href)
		}
		return nil
	case Invoke:
		return invoke(a.Effect, env)
	default:
		return fmt.Errorf("%w: %q", ErrMalformedEntry, d.ID)
	}
}

func invoke(effect Effect, env Dispatcher) error {
	switch e := effect.(type) {
	case SetTool:
		env.SetActiveTool(e.Tool)
		return nil
	case CopyLink:
		if err := env.CopyToClipboard(e.URL); err != nil {
			return fmt.Errorf("copy link: %w", err)
		}
		env.Notify(CopiedMessage)
		return nil
	default:
		return ErrMalformedEntry
	}
}
