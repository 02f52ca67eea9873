package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/plantkeeper/internal/timex"
)

func mustDate(t *testing.T, s string) timex.Date {
	t.Helper()
	d, err := timex.ParseDate(s)
	require.NoError(t, err)
	return d
}
