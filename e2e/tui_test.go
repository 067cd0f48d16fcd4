//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartupListsTeams(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Red Bull"), "Should list Red Bull")
	require.True(t, tf.SeePlain("Ferrari"), "Should list Ferrari")
	require.True(t, tf.SeePlain("/static/teams/redbull.png"), "Should show logo link")

	// The default config is written on first start
	_, err := os.Stat(filepath.Join(tf.workspace, "config.toml"))
	require.NoError(t, err, "config.toml should be created")
}

func TestStartupFailureShowsMessage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	tf.backend.FailAll(true)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Erro ao buscar dados das equipes."))
}

func TestSearchThenOpenDrivers(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("Red Bull"))
	require.Eventually(t, func() bool {
		for _, p := range tf.backend.Requests() {
			if p == "/team/name/Red Bull" {
				return true
			}
		}
		return false
	}, 3*time.Second, 25*time.Millisecond, "search request should reach the backend")

	// Back to the list and open the only result
	require.NoError(t, tf.SendKeys(KeyTab))
	time.Sleep(50 * time.Millisecond)
	tf.ResetOutput()
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Max Verstappen"), "modal should list drivers")
	require.True(t, tf.SeePlain("Fechar"), "modal should offer close")

	tf.ResetOutput()
	require.NoError(t, tf.Esc())
	require.True(t, tf.SeePlain("Pesquisar"), "list should come back after closing")
}

func TestSearchMissShowsStatus(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("Ferari"))
	require.True(t, tf.SeePlain("Request failed with status code 404"))
	require.True(t, tf.SeePlain(`Você quis dizer "Ferrari"?`))
}

func TestQuitExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Quit())
	require.True(t, tf.WaitExit(2*time.Second), "app did not exit after quit")
}

func TestCtrlCExitsFromSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.True(t, tf.WaitExit(2*time.Second), "app did not exit after ctrl+c")
}
