package gamescript

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script contains game script YAML content. Scripts drive a table
// through a scenario and verify the outcome of every step.
type Script struct {
	Game    GameSettings `yaml:"game"`
	Players []SeatPlayer `yaml:"players"`
	Actions []Action     `yaml:"actions"`
}

type GameSettings struct {
	DefaultBalance float64 `yaml:"default-balance"`
	MinPlayers     int     `yaml:"min-players"`
	AutoStart      bool    `yaml:"auto-start"`
}

// SeatPlayer is a scripted participant. Cards are dealt to the
// players in list order when the round starts.
type SeatPlayer struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}

type Action struct {
	Action      string  `yaml:"action"`
	Player      string  `yaml:"player"`
	Amount      float64 `yaml:"amount"`
	ExpectError string  `yaml:"expect-error"`
	Verify      *Verify `yaml:"verify"`
}

// Verify lists the expected outcome of an action. Nil fields are not
// checked.
type Verify struct {
	Pot         *float64 `yaml:"pot"`
	FirstTurn   string   `yaml:"first-turn"`
	CurrentTurn string   `yaml:"current-turn"`
	Winner      string   `yaml:"winner"`
	Balance     *float64 `yaml:"balance"`
	Settled     *bool    `yaml:"settled"`
}

// ReadGameScript reads a game script YAML file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading game script file [%s]", fileName)
	}
	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}
	if err := script.validate(); err != nil {
		return nil, errors.Wrapf(err, "Invalid game script [%s]", fileName)
	}
	return &script, nil
}

func (s *Script) validate() error {
	if len(s.Players) < 2 {
		return errors.Errorf("script needs at least 2 players, has %d", len(s.Players))
	}
	names := make(map[string]bool)
	dealt := make(map[string]string)
	for _, p := range s.Players {
		if names[p.Name] {
			return errors.Errorf("duplicate player name %s", p.Name)
		}
		names[p.Name] = true
		if len(p.Cards) != 0 && len(p.Cards) != 2 {
			return errors.Errorf("player %s must have 0 or 2 scripted cards, has %d", p.Name, len(p.Cards))
		}
		for _, card := range p.Cards {
			if holder, ok := dealt[card]; ok {
				return errors.Errorf("card %s scripted for both %s and %s", card, holder, p.Name)
			}
			dealt[card] = p.Name
		}
	}
	for i, a := range s.Actions {
		switch a.Action {
		case "join", "start", "bet", "fold", "showdown", "end":
		default:
			return errors.Errorf("action %d: unknown action %q", i, a.Action)
		}
	}
	return nil
}

// HasScriptedCards reports whether every player has a scripted hand.
func (s *Script) HasScriptedCards() bool {
	for _, p := range s.Players {
		if len(p.Cards) == 0 {
			return false
		}
	}
	return true
}
