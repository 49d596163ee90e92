package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/game"
	"voyager.com/cardtable/logging"
	"voyager.com/cardtable/rest"
	"voyager.com/cardtable/util"
)

var mainLogger = log.With().Str("logger_name", "main").Logger()

func main() {
	var logLevel = flag.String("log-level", util.Env.GetLogLevel(), "log level: trace, debug, info, warn, error")
	flag.Parse()

	log.Logger = *logging.GetZeroLogger("cardtable", nil)

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		mainLogger.Warn().Msgf("Unknown log level %s. Using info", *logLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	manager, err := game.NewGameManager(nil, nil)
	if err != nil {
		mainLogger.Error().Msgf("Unable to initialize the table: %v", err)
		os.Exit(1)
	}

	server := rest.NewServer(manager)
	if err := server.Run(); err != nil {
		mainLogger.Error().Msgf("REST server exited: %v", err)
		os.Exit(1)
	}
}
