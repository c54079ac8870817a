package sim

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AmbientTemp is the resting temperature every cell relaxes toward.
const AmbientTemp = 20

//go:embed defaults.yaml
var defaultsYAML []byte

// Params holds the tunable thresholds and probability denominators for the
// reaction and movement rules. A chance of n means a 1-in-n draw per tick.
type Params struct {
	LavaTemp          int `yaml:"lava_temp"`
	FireTemp          int `yaml:"fire_temp"`
	LavaSolidifyBelow int `yaml:"lava_solidify_below"`
	WaterBoilAbove    int `yaml:"water_boil_above"`

	SteamCondenseBelow   int `yaml:"steam_condense_below"`
	SteamCondenseChance  int `yaml:"steam_condense_chance"`
	SteamDissipateChance int `yaml:"steam_dissipate_chance"`

	FireSmolderChance int `yaml:"fire_smolder_chance"`
	FireBurnoutChance int `yaml:"fire_burnout_chance"`
	FireRiseChance    int `yaml:"fire_rise_chance"`
	FireSpreadChance  int `yaml:"fire_spread_chance"`

	AcidConsumeChance int `yaml:"acid_consume_chance"`
	OilMoveChance     int `yaml:"oil_move_chance"`

	SmokeRiseChance  int `yaml:"smoke_rise_chance"`
	SmokeDriftChance int `yaml:"smoke_drift_chance"`
	SmokeFadeChance  int `yaml:"smoke_fade_chance"`
}

// Config controls the world dimensions and rule tunables.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration parsed from the embedded
// defaults file.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("sim: parsing embedded defaults: %v", err))
	}
	return c
}

// LoadConfig reads a YAML tunables file, merging it over the embedded
// defaults. An empty path yields the defaults unchanged; fields absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}
