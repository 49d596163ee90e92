package util

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type cardTableEnvironment struct {
	ServerPort     string
	DefaultBalance string
	MinPlayers     string
	AutoStart      string
	LogLevel       string
}

// Env is a helper object for accessing environment variables.
var Env = &cardTableEnvironment{
	ServerPort:     "GAME_SERVER_PORT",
	DefaultBalance: "DEFAULT_BALANCE",
	MinPlayers:     "MIN_PLAYERS",
	AutoStart:      "AUTO_START",
	LogLevel:       "LOG_LEVEL",
}

func (c *cardTableEnvironment) GetServerPort() int {
	v := os.Getenv(c.ServerPort)
	if v == "" {
		return 8080
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		environmentLogger.Warn().Msgf("Invalid %s value: %s. Using default port 8080", c.ServerPort, v)
		return 8080
	}
	return port
}

func (c *cardTableEnvironment) GetDefaultBalance() float64 {
	v := os.Getenv(c.DefaultBalance)
	if v == "" {
		return 1000
	}
	balance, err := strconv.ParseFloat(v, 64)
	if err != nil || balance <= 0 {
		environmentLogger.Warn().Msgf("Invalid %s value: %s. Using default balance 1000", c.DefaultBalance, v)
		return 1000
	}
	return balance
}

func (c *cardTableEnvironment) GetMinPlayers() int {
	v := os.Getenv(c.MinPlayers)
	if v == "" {
		return 2
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 2 {
		environmentLogger.Warn().Msgf("Invalid %s value: %s. Using minimum of 2 players", c.MinPlayers, v)
		return 2
	}
	return n
}

func (c *cardTableEnvironment) ShouldAutoStart() bool {
	v := os.Getenv(c.AutoStart)
	if v == "" {
		// The table starts a round as soon as enough players join.
		return true
	}
	return v == "1" || v == "true"
}

func (c *cardTableEnvironment) GetLogLevel() string {
	v := os.Getenv(c.LogLevel)
	if v == "" {
		return "info"
	}
	return v
}
