package assert

import (
	"github.com/norman784/amethyst/logging"
)

// T panics through the error logger if cond is false.
// Meant for programmer errors, not recoverable runtime failures.
func T(cond bool, format string, args ...any) {

	if cond {
		return
	}

	logging.ErrLog.Panicf("Assert failed: "+format+"\n", args...)
}
