package testing

import (
	"testing"

	"github.com/arloliu/distribute/internal/logger"
	"github.com/arloliu/distribute/types"
)

// NewTestLogger creates a logger that writes through t.Logf, so log output
// shows up next to the test that produced it (go test -v).
//
// Key-value pairs are rendered as "key=value" and Fatal fails the test.
//
// Example:
//
//	d := distribute.NewDistributor[int](distribute.WithLogger(distributetest.NewTestLogger(t)))
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
