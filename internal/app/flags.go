package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	W         int
	H         int
	Scale     int
	TPS       int
	Seed      int64
	Save      string
	Tunables  string
	Telemetry string
	Sample    int
}

// NewConfig returns a Config populated with sensible defaults. Zero values
// for W, H and Seed mean "use the tunables file".
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, Save: "map.txt", Sample: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.W, "w", c.W, "grid width (0 = from tunables)")
	fs.IntVar(&c.H, "h", c.H, "grid height (0 = from tunables)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 = from tunables)")
	fs.StringVar(&c.Save, "save", c.Save, "save file path")
	fs.StringVar(&c.Tunables, "config", c.Tunables, "YAML tunables file")
	fs.StringVar(&c.Telemetry, "telemetry", c.Telemetry, "telemetry output directory (empty = off)")
	fs.IntVar(&c.Sample, "sample", c.Sample, "telemetry sample interval in ticks")
}
