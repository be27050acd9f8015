package assert

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type reporter interface{ Report() }

type nilReporter struct{}

func (*nilReporter) Report() {}

func TestNotNil(t *testing.T) {
	var typedNil *url.URL
	var nilReporterPtr *nilReporter
	var nilMap map[string]int
	var nilFunc func()

	require.Panics(t, func() { NotNil(nil) })
	require.Panics(t, func() { NotNil(typedNil) })
	require.Panics(t, func() { NotNil(reporter(nilReporterPtr)) })
	require.Panics(t, func() { NotNil(nilMap) })
	require.Panics(t, func() { NotNil(nilFunc) })

	require.NotPanics(t, func() { NotNil(&url.URL{}) })
	require.NotPanics(t, func() { NotNil(0) })
	require.NotPanics(t, func() { NotNil("") })
	require.NotPanics(t, func() { NotNil(map[string]int{}) })
	require.NotPanics(t, func() { NotNil(struct{}{}) })
}
