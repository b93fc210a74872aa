package orbital

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the simulation tunables. Everything has a compiled default so
// the library is usable without any configuration file; the cmd tools load a
// conf.toml through LoadConfig when the ORBITSIM_CONFIG directory is set.
type Config struct {
	OutputDir      string    // where exported trajectories land
	MaxSubsteps    int       // numerical substep cap under time acceleration
	ReboundDamping float64   // velocity damping of a surface rebound
	WarpLevels     []float64 // discrete time-acceleration factors
}

// DefaultConfig returns the compiled defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir:      ".",
		MaxSubsteps:    10,
		ReboundDamping: reboundDamping,
		WarpLevels:     TimeWarpLevels,
	}
}

// LoadConfig reads conf.toml from the directory named by the ORBITSIM_CONFIG
// environment variable. An unset variable is not an error: the defaults are
// returned as-is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	confPath := os.Getenv("ORBITSIM_CONFIG")
	if confPath == "" {
		return cfg, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("%s/conf.toml not found: %s", confPath, err)
	}
	if v.IsSet("general.output_path") {
		cfg.OutputDir = v.GetString("general.output_path")
	}
	if v.IsSet("integration.max_substeps") {
		cfg.MaxSubsteps = v.GetInt("integration.max_substeps")
	}
	if v.IsSet("collision.damping") {
		cfg.ReboundDamping = v.GetFloat64("collision.damping")
	}
	if v.IsSet("time.warp_levels") {
		levels := v.GetIntSlice("time.warp_levels")
		cfg.WarpLevels = make([]float64, len(levels))
		for i, l := range levels {
			cfg.WarpLevels[i] = float64(l)
		}
	}
	if cfg.MaxSubsteps < 1 {
		return cfg, fmt.Errorf("integration.max_substeps must be at least 1, got %d", cfg.MaxSubsteps)
	}
	return cfg, nil
}
