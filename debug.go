package arcade

import (
	"fmt"
	"os"
)

// globalDebug enables extra caller-hazard checks and stderr warnings.
// Plain bool, no sync — arcade is single-threaded.
var globalDebug bool

// SetDebug toggles debug mode. In debug mode the package warns on stderr
// about conditions that are legal but usually bugs: appending to a disposed
// list, lists growing past a sanity threshold, and platformer frame tables
// that reference missing frames. Release mode skips the checks entirely.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckListDisposed warns when an operation touches a disposed list.
func debugCheckListDisposed(l *SpriteList, op string) {
	if l.disposed {
		_, _ = fmt.Fprintf(os.Stderr, "[arcade] warning: %s on disposed sprite list\n", op)
	}
}

// debugMaxListSize is the sanity threshold for list growth warnings.
const debugMaxListSize = 100000

func debugCheckListSize(l *SpriteList) {
	if len(l.actors) == debugMaxListSize {
		_, _ = fmt.Fprintf(os.Stderr, "[arcade] warning: sprite list reached %d entries\n",
			debugMaxListSize)
	}
}
