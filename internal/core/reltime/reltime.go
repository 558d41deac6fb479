// Package reltime resolves relative-time expressions like "2h" into absolute
// UTC instants. Only the hour unit is supported: the leading integer before
// the first "h" is the elapsed hour count and anything after the marker is
// ignored ("2h ago" parses the same as "2h"). A bare integer with no marker
// also parses. Other units ("30m", "2d") and non-numeric or empty leading
// segments are malformed.
package reltime

import (
	"strconv"
	"strings"
	"time"

	perr "sentimenttech/internal/platform/errors"
)

// Resolve returns now minus the hour count encoded in expr, in UTC.
// Malformed expressions return an ErrorCodeInvalidArgument error.
func Resolve(expr string, now time.Time) (time.Time, error) {
	head, _, _ := strings.Cut(expr, "h")
	k, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return time.Time{}, perr.InvalidArgf("malformed timestamp %q: want \"<hours>h\"", expr)
	}
	return now.UTC().Add(-time.Duration(k) * time.Hour), nil
}

// IsMalformed reports whether err came from a malformed relative-time expression
func IsMalformed(err error) bool { return perr.IsCode(err, perr.ErrorCodeInvalidArgument) }
