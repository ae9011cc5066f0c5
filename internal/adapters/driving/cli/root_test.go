package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFactory(t *testing.T, f Factory) {
	t.Helper()
	SetFactory(f)
	t.Cleanup(func() {
		SetFactory(nil)
		SetServices(nil)
		closeServices = nil
	})
}

func TestExecute_OpensAndClosesServices(t *testing.T) {
	env := setupTestServices(t)
	var gotOpts Options
	closed := 0
	withFactory(t, func(opts Options) (*Services, func() error, error) {
		gotOpts = opts
		return env.services, func() error { closed++; return nil }, nil
	})
	rootCmd.SetArgs([]string{"dashboard", "--memory", "--data-dir", "/tmp/kith-test"})
	defer rootCmd.SetArgs(nil)
	resetFlags(rootCmd)

	err := Execute()

	require.NoError(t, err)
	assert.True(t, gotOpts.Memory)
	assert.Equal(t, "/tmp/kith-test", gotOpts.DataDir)
	assert.Equal(t, 1, closed)
	assert.Nil(t, closeServices)
}

func TestExecute_FactoryError(t *testing.T) {
	withFactory(t, func(Options) (*Services, func() error, error) {
		return nil, nil, errors.New("disk full")
	})
	rootCmd.SetArgs([]string{"contact", "list"})
	defer rootCmd.SetArgs(nil)
	resetFlags(rootCmd)

	err := Execute()

	assert.ErrorContains(t, err, "opening kith data: disk full")
}

func TestExecute_CloseError(t *testing.T) {
	env := setupTestServices(t)
	withFactory(t, func(Options) (*Services, func() error, error) {
		return env.services, func() error { return errors.New("close failed") }, nil
	})
	rootCmd.SetArgs([]string{"dashboard"})
	defer rootCmd.SetArgs(nil)
	resetFlags(rootCmd)

	err := Execute()

	assert.ErrorContains(t, err, "close failed")
}

func TestVersion_SkipsFactory(t *testing.T) {
	called := false
	withFactory(t, func(Options) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})

	_, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestSetServices_Nil(t *testing.T) {
	setupTestServices(t)

	SetServices(nil)

	assert.Nil(t, checkInService)
	assert.Nil(t, scheduler)
	assert.Nil(t, configWatcher)
}
