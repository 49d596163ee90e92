package gamescript

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGameScripts(t *testing.T) {
	files, err := filepath.Glob("test_scripts/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			script, err := ReadGameScript(file)
			require.NoError(t, err)

			driver := NewDriver(script, rand.NewSource(1))
			err = driver.Run()
			require.NoError(t, err)
		})
	}
}

func TestDriverStopsOnFailedExpectation(t *testing.T) {
	script := &Script{
		Game: GameSettings{DefaultBalance: 1000, MinPlayers: 2},
		Players: []SeatPlayer{
			{Name: "yong"},
			{Name: "brian"},
		},
		Actions: []Action{
			{Action: "join", Player: "yong"},
			{Action: "join", Player: "brian"},
			{Action: "start", Verify: &Verify{FirstTurn: "brian"}},
		},
	}
	require.NoError(t, script.validate())

	driver := NewDriver(script, rand.NewSource(1))
	err := driver.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected first turn brian")
}
