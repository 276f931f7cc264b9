package scanner

import (
	"fmt"

	"github.com/saphyr-rs/saphyr-parser/chars"
)

// Error is returned for any malformed input the scanner detects. It
// satisfies the error interface and carries the position the problem was
// found at, mirroring the teacher's newScannerError helper
// (_examples/WillAbides-yaml/internal/parserc/scannerc.go).
type Error struct {
	Mark chars.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Mark.String())
}
