package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertCreatedBy checks the output within a HarnessResult to confirm that
// the requested object was produced by module and has the Go type typeName.
func AssertCreatedBy(t *testing.T, result *HarnessResult, module, typeName string) {
	t.Helper()

	require.NoError(t, result.Err)
	want := fmt.Sprintf("%s\t%s\n", module, typeName)
	require.True(t, strings.Contains(result.Output, want),
		"expected output to contain %q.\n--- Output ---\n%s", want, result.Output)
}
