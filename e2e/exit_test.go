//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitPrintsFinalValue(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.Quit())

	select {
	case err := <-done:
		require.NoError(t, err, "Should exit cleanly")
	case <-time.After(3 * time.Second):
		tf.SendCtrlC()
		t.Fatal("'q' did not quit within 3 seconds")
	}

	require.True(t, tf.SeePlain("Items in source:"), "Should print the summary on exit")
	require.True(t, tf.SeePlain("Svelte (sv)"), "Should list destination items")
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.SendCtrlC())

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Ctrl+C did not quit within 3 seconds")
	}
}
