package input

import (
	"context"

	"github.com/bnema/workbench/internal/logging"
)

// TabNavigator is the part of the tab store the keyboard drives.
type TabNavigator interface {
	CloseActive(ctx context.Context)
	ActivateNext(ctx context.Context)
	ActivatePrevious(ctx context.Context)
	ActivateIndex(ctx context.Context, index int)
}

// KeyboardController is the global tab navigation listener.
//
//	Ctrl/Cmd+W   close active tab
//	Tab          next tab, wrapping
//	Shift+Tab    previous tab, wrapping
//	1-9          jump to position
//
// Nothing fires while a text-entry element has focus.
type KeyboardController struct {
	router *Router
	tabs   TabNavigator
	remove func()
}

// NewKeyboardController creates an unmounted controller.
func NewKeyboardController(router *Router, tabs TabNavigator) *KeyboardController {
	return &KeyboardController{router: router, tabs: tabs}
}

// Mount registers the listener on the router. Mounting twice is a no-op.
func (c *KeyboardController) Mount() {
	if c.remove != nil {
		return
	}
	c.remove = c.router.AddKeyListener(c.Handle)
}

// Unmount removes the listener.
func (c *KeyboardController) Unmount() {
	if c.remove == nil {
		return
	}
	c.remove()
	c.remove = nil
}

// Mounted reports whether the listener is registered.
func (c *KeyboardController) Mounted() bool {
	return c.remove != nil
}

// Handle processes one key event.
func (c *KeyboardController) Handle(ctx context.Context, ev *KeyEvent) {
	if ev.TextEntry {
		return
	}

	// Tab and digits fire bare; any other modifier must be Ctrl/Cmd.
	switch {
	case ev.Key == "tab" && ev.Modifiers == ModShift:
		c.tabs.ActivatePrevious(ctx)
	case ev.Key == "tab" && ev.Modifiers == ModNone:
		c.tabs.ActivateNext(ctx)
	case isJumpDigit(ev.Key) && (ev.Modifiers == ModNone || ev.Command()):
		c.tabs.ActivateIndex(ctx, int(ev.Key[0]-'1'))
	case ev.Key == "w" && ev.Command():
		c.tabs.CloseActive(ctx)
	default:
		return
	}

	ev.PreventDefault()
	logging.FromContext(ctx).Debug().
		Str("key", ev.Key).
		Uint("modifiers", uint(ev.Modifiers)).
		Msg("tab shortcut handled")
}

func isJumpDigit(key string) bool {
	return len(key) == 1 && key[0] >= '1' && key[0] <= '9'
}
