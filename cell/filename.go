package cell

import (
	"fmt"
	"regexp"
)

var filenamePattern = regexp.MustCompile(`<cell-([0-9]+)>`)

// Filename returns the pseudo-filename under which code compiled from the
// given cell is registered, so that tracebacks point back at the owning cell.
func Filename(id ID) string {
	return fmt.Sprintf("<cell-%s>", id)
}

// IDFromFilename recovers the cell ID embedded in a traceback pseudo-filename
// produced by Filename. It reports false when filename carries no such
// marker.
func IDFromFilename(filename string) (ID, bool) {
	matches := filenamePattern.FindStringSubmatch(filename)
	if len(matches) < 2 {
		return "", false
	}
	return ID(matches[1]), true
}
