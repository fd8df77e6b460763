//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startDefault(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	require.True(t, tf.Ready(), "Should render both lists")
	return tf
}

func TestStartupShowsBothLists(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.True(t, tf.SeePlain("React"), "Should show source items")
	require.True(t, tf.SeePlain("Svelte"), "Should show destination items")
	require.True(t, tf.SeePlain("Transfer all"), "Should show the transfer-all button")
}

func TestTransferCheckedItem(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlain("[x] React"), "Should check the item under the cursor")

	require.NoError(t, tf.Enter())
	require.True(t, tf.WaitForStatusMessage("Moved 1 item to Destination", 3*time.Second),
		"Should report the transfer")
}

func TestTransferAllMatchingSearch(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.NoError(t, tf.Search("js"))
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.NoError(t, tf.TransferAll())

	require.True(t, tf.WaitForStatusMessage("Moved 3 items to Destination", 3*time.Second),
		"Should move only the items matching the search")
}

func TestSearchNothingFound(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain("Nothing matches your search"), "Should show the nothing-found text")
}

func TestSwitchSideAndTransferBack(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.NoError(t, tf.SwitchSide())
	require.NoError(t, tf.Select())
	require.NoError(t, tf.Enter())

	require.True(t, tf.WaitForStatusMessage("Moved 1 item to Source", 3*time.Second),
		"Should move the item to the left list")
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()
	tf := startDefault(t)

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("check all"), "Should show the full key help")
}
