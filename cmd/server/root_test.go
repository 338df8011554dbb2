package main

import (
	"testing"

	cfgpkg "github.com/0xPexy/sentra-gas-station/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	log, err := newLogger(cfgpkg.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(cfgpkg.LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)

	_, err = newLogger(cfgpkg.LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	_, err := openStore(cfgpkg.DatabaseConfig{Driver: "postgres"}, zap.NewNop())
	require.Error(t, err)

	st, err := openStore(cfgpkg.DatabaseConfig{Driver: cfgpkg.DriverMemory}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, st)
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"serve", "migrate"}, names)
}
