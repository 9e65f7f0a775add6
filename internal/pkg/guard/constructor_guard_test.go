package guard_test

import (
	"errors"
	"testing"

	"penguinadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotConstructed, g.Validate(errNotConstructed))
	})

	t.Run("zero_value_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})

	t.Run("copy_keeps_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type command struct {
		orderID string
		guard   guard.ConstructorGuard
	}
	errCommand := errors.New("command must be created via newCommand")

	newCommand := func(orderID string) (command, error) {
		if orderID == "" {
			return command{}, errors.New("order id is required")
		}
		return command{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	cmd, err := newCommand("o-1")
	require.NoError(t, err)
	require.NoError(t, cmd.guard.Validate(errCommand))

	var raw command
	require.ErrorIs(t, raw.guard.Validate(errCommand), errCommand)

	_, err = newCommand("")
	require.Error(t, err)
}
