package game

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// copyText is swapped out in tests.
var copyText = clipboard.WriteAll

// copySummary places the deployment summary on the system clipboard.
func copySummary(summary string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	if err := copyText(summary); err != nil {
		return errors.Wrap(err, "copying deployment summary")
	}
	return nil
}
