package glutil

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GL_CONTEXT_LOST is a 4.5 enum, absent from the 3.3 core bindings
const contextLost = 0x507

var glErrorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// Error holds every error code drained from the GL error queue.
type Error struct {
	Codes []uint32
}

func (e *Error) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		if name, ok := glErrorNames[code]; ok {
			names[i] = name
		} else {
			names[i] = fmt.Sprintf("UNKNOWN(0x%x)", code)
		}
	}
	return "GL_ERROR: " + strings.Join(names, ", ")
}

// CheckError drains the GL error queue and returns nil when it was empty.
func CheckError() error {
	var codes []uint32
	for {
		glerr := gl.GetError()
		if glerr == gl.NO_ERROR {
			break
		}
		codes = append(codes, glerr)
		if glerr == contextLost {
			// the queue never empties on a lost context
			break
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return &Error{Codes: codes}
}
