package hooking

import (
	"io"
	"log"
)

// A LogHook is a hook that is resonsible for recording information from the
// assembly.
type LogHook interface {
	Hook
}

// LogHookBase proovides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// MakeLogHookBase creates a LogHookBase that writes to w with the given
// prefix.
func MakeLogHookBase(w io.Writer, prefix string) LogHookBase {
	return LogHookBase{
		Logger: log.New(w, prefix, log.LstdFlags|log.Lmicroseconds),
	}
}
