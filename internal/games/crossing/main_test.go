package crossing

import (
	"testing"

	"go.uber.org/goleak"
)

// The game is driven by the caller's tick loop and must never start goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
