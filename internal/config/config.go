package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AndreasThinks/ankh-morpork-scramble/internal/game"
	"github.com/caarlos0/env/v11"
)

// Settings are the process-level knobs, read from the environment.
type Settings struct {
	Address      string `env:"SCRAMBLE_ADDRESS" envDefault:":8080"`
	DatabasePath string `env:"SCRAMBLE_DB_PATH" envDefault:"scramble.db"`
	ConfigPath   string `env:"SCRAMBLE_CONFIG_PATH"`
}

// LoadSettings parses settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}

type positionEntry struct {
	Key         string           `json:"key"`
	Role        string           `json:"role"`
	Cost        int              `json:"cost"`
	MaxQuantity int              `json:"max_quantity"`
	MA          int              `json:"ma"`
	ST          int              `json:"st"`
	AG          int              `json:"ag"`
	PA          int              `json:"pa"`
	AV          int              `json:"av"`
	Skills      []game.SkillType `json:"skills"`
}

type rosterEntry struct {
	TeamType   string          `json:"team_type"`
	RerollCost int             `json:"reroll_cost"`
	MaxRerolls int             `json:"max_rerolls"`
	Positions  []positionEntry `json:"positions"`
}

type rawConfig struct {
	RosterList []rosterEntry `json:"roster_list"`
}

// LoadRosters reads a roster catalog from the configuration file at path.
// An empty path returns the built-in rosters. A file replaces the catalog
// wholesale; it requires the key `roster_list` (snake_case).
func LoadRosters(path string) (map[game.TeamType]game.Roster, error) {
	if path == "" {
		return game.DefaultRosters(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(rc.RosterList) == 0 {
		return nil, fmt.Errorf("config file %s: roster_list is empty (provide 'roster_list' array)", path)
	}

	rosters := make(map[game.TeamType]game.Roster, len(rc.RosterList))
	for _, re := range rc.RosterList {
		teamType := game.TeamType(strings.TrimSpace(re.TeamType))
		if teamType == "" {
			return nil, fmt.Errorf("config file %s: roster entry missing 'team_type'", path)
		}
		if _, exists := rosters[teamType]; exists {
			return nil, fmt.Errorf("config file %s: duplicate team_type '%s'", path, teamType)
		}
		if len(re.Positions) == 0 {
			return nil, fmt.Errorf("config file %s: roster '%s' has no positions", path, teamType)
		}

		positions := make(map[string]game.Archetype, len(re.Positions))
		for _, pe := range re.Positions {
			key := strings.TrimSpace(pe.Key)
			if key == "" {
				return nil, fmt.Errorf("config file %s: roster '%s' position missing 'key'", path, teamType)
			}
			if _, exists := positions[key]; exists {
				return nil, fmt.Errorf("config file %s: roster '%s' duplicate position key '%s'", path, teamType, key)
			}
			if pe.Cost <= 0 || pe.MaxQuantity <= 0 {
				return nil, fmt.Errorf("config file %s: roster '%s' position '%s' needs positive cost and max_quantity", path, teamType, key)
			}
			positions[key] = game.Archetype{
				Role:        pe.Role,
				Cost:        pe.Cost,
				MaxQuantity: pe.MaxQuantity,
				MA:          pe.MA,
				ST:          pe.ST,
				AG:          pe.AG,
				PA:          pe.PA,
				AV:          pe.AV,
				Skills:      pe.Skills,
			}
		}

		rosters[teamType] = game.Roster{
			TeamType:   teamType,
			Positions:  positions,
			RerollCost: re.RerollCost,
			MaxRerolls: re.MaxRerolls,
		}
	}
	return rosters, nil
}
