package window

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/flycam/input"
)

// Escape is reserved for toggling mouse capture.
var keyNames = map[string]glfw.Key{
	"space":        glfw.KeySpace,
	"tab":          glfw.KeyTab,
	"capslock":     glfw.KeyCapsLock,
	"enter":        glfw.KeyEnter,
	"backspace":    glfw.KeyBackspace,
	"leftshift":    glfw.KeyLeftShift,
	"rightshift":   glfw.KeyRightShift,
	"leftcontrol":  glfw.KeyLeftControl,
	"rightcontrol": glfw.KeyRightControl,
	"leftalt":      glfw.KeyLeftAlt,
	"rightalt":     glfw.KeyRightAlt,
	"up":           glfw.KeyUp,
	"down":         glfw.KeyDown,
	"left":         glfw.KeyLeft,
	"right":        glfw.KeyRight,
	"pageup":       glfw.KeyPageUp,
	"pagedown":     glfw.KeyPageDown,
	"home":         glfw.KeyHome,
	"end":          glfw.KeyEnd,
}

func init() {
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		keyNames[strings.ToLower(string(rune('A'+k-glfw.KeyA)))] = k
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		keyNames[string(rune('0'+k-glfw.Key0))] = k
	}
}

// LookupKey resolves a case-insensitive key name such as "W" or "LeftShift".
func LookupKey(name string) (glfw.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// keyMap resolves every binding to a glfw key.
type keyMap map[input.Action]glfw.Key

func newKeyMap(b input.Bindings) (keyMap, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	m := make(keyMap, len(b))
	for a, name := range b {
		k, err := LookupKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding for %v: %w", a, err)
		}
		m[a] = k
	}
	return m, nil
}
