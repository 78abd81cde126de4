//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// Every constructor dependency must resolve before any container work
// happens; a missing provider fails here instead of in every SetupSuite.
func TestAppGraphResolves(t *testing.T) {
	err := fx.ValidateApp(
		appOptions("localhost:6379", newCatalogStub(), &OrderSinkStub{}),
	)
	require.NoError(t, err)
}
