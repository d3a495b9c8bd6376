// Package config holds the runtime configuration, loaded once in main
// from flags and DOWNSTACK_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	DebugKey            = "debug"
	CPUProfileKey       = "cpu-profile"
	MemProfileKey       = "mem-profile"
	BoardWidthKey       = "board-width"
	BoardHeightKey      = "board-height"
	RotationSystemKey   = "rotation-system"
	RulesFileKey        = "rules-file"
	SearchAlgorithmKey  = "search-algorithm"
	MaxDepthKey         = "max-depth"
	Allow180Key         = "allow-180"
	AllowHardDropKey    = "allow-hard-drop"
	AllowSoftDropKey    = "allow-soft-drop"
	Is20GKey            = "is-20g"
	LastRotationOnlyKey = "last-rotation-only"
)

const envPrefix = "DOWNSTACK"

// Config wraps a viper instance. Values resolve flag first, then
// environment, then default.
type Config struct {
	vc *viper.Viper
}

// New creates an empty, unloaded config.
func New() *Config {
	return &Config{vc: viper.New()}
}

// Load parses the argument list and binds the environment.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("downstack", pflag.ContinueOnError)

	fs.Bool(DebugKey, false, "debug logging")
	fs.String(CPUProfileKey, "", "write a CPU profile to this file")
	fs.String(MemProfileKey, "", "write a memory profile to this file")
	fs.Int(BoardWidthKey, 10, "board width in cells")
	fs.Int(BoardHeightKey, 40, "board height in cells")
	fs.String(RotationSystemKey, "srs", "rotation system to play under")
	fs.String(RulesFileKey, "", "YAML file with extra rotation systems")
	fs.String(SearchAlgorithmKey, "pathsearch", "placement search algorithm")
	fs.Int(MaxDepthKey, 30, "maximum move-sequence length to search")
	fs.Bool(Allow180Key, false, "allow 180-degree rotations")
	fs.Bool(AllowHardDropKey, true, "allow hard drops in the search")
	fs.Bool(AllowSoftDropKey, true, "allow soft drops in the search")
	fs.Bool(Is20GKey, false, "instantaneous gravity: pieces always rest on the stack")
	fs.Bool(LastRotationOnlyKey, false, "report only landings that finish with a rotation")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.vc.BindPFlags(fs); err != nil {
		return err
	}
	c.vc.SetEnvPrefix(envPrefix)
	c.vc.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.vc.AutomaticEnv()
	return nil
}

func (c *Config) GetBool(key string) bool     { return c.vc.GetBool(key) }
func (c *Config) GetString(key string) string { return c.vc.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.vc.GetInt(key) }

// Set overrides a value at runtime, e.g. from a shell command.
func (c *Config) Set(key string, value any) { c.vc.Set(key, value) }
