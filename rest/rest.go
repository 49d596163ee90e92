package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"voyager.com/cardtable/game"
	"voyager.com/cardtable/util"
)

var restLogger = log.With().Str("logger_name", "rest::rest").Logger()

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type playerPayload struct {
	Name string `json:"name" binding:"required"`
}

type betPayload struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// Server exposes the table operations over HTTP. It is thin glue:
// all validation lives in the game package.
type Server struct {
	manager *game.Manager
}

func NewServer(manager *game.Manager) *Server {
	return &Server{manager: manager}
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/join", s.joinGame)
	r.POST("/bet", s.placeBet)
	r.POST("/fold", s.foldPlayer)
	r.POST("/showdown", s.showdown)
	r.POST("/end", s.endGame)
	r.GET("/status", s.gameStatus)
	r.GET("/rounds", s.roundHistory)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) Run() error {
	port := util.Env.GetServerPort()
	restLogger.Info().
		Str("gameCode", s.manager.GameCode()).
		Msgf("Starting REST server on port %d", port)
	return s.setupRouter().Run(fmt.Sprintf(":%d", port))
}

func (s *Server) joinGame(c *gin.Context) {
	var payload playerPayload
	if err := c.BindJSON(&payload); err != nil {
		restLogger.Error().Msgf("Failed to parse join request. Error: %v", err)
		return
	}

	result, err := s.manager.Table().Join(payload.Name)
	if err != nil {
		s.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) placeBet(c *gin.Context) {
	var payload betPayload
	if err := c.BindJSON(&payload); err != nil {
		restLogger.Error().Msgf("Failed to parse bet request. Error: %v", err)
		return
	}

	result, err := s.manager.Table().Bet(payload.Name, payload.Amount)
	if err != nil {
		s.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) foldPlayer(c *gin.Context) {
	var payload playerPayload
	if err := c.BindJSON(&payload); err != nil {
		restLogger.Error().Msgf("Failed to parse fold request. Error: %v", err)
		return
	}

	result, err := s.manager.Table().Fold(payload.Name)
	if err != nil {
		s.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) showdown(c *gin.Context) {
	result, err := s.manager.Table().Showdown()
	if err != nil {
		s.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) endGame(c *gin.Context) {
	result, err := s.manager.Table().EndRound()
	if err != nil {
		s.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) gameStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.Table().Status())
}

func (s *Server) roundHistory(c *gin.Context) {
	c.JSON(http.StatusOK, s.manager.RoundHistory())
}

func (s *Server) reportError(c *gin.Context, err error) {
	code := httpStatus(err)
	restLogger.Error().Msgf("Request rejected: %v", err)
	c.IndentedJSON(code, appError{
		Code:    code,
		Message: err.Error(),
	})
	c.Error(err)
}

// httpStatus maps game errors to status codes: unknown or folded
// players are 404, every other rejected transition is 400.
func httpStatus(err error) int {
	switch errors.Cause(err).(type) {
	case game.PlayerNotFoundError, game.PlayerInactiveError:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
