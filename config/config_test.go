package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := New()
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(BoardWidthKey), 10)
	is.Equal(c.GetInt(BoardHeightKey), 40)
	is.Equal(c.GetString(RotationSystemKey), "srs")
	is.Equal(c.GetString(SearchAlgorithmKey), "pathsearch")
	is.Equal(c.GetBool(DebugKey), false)
	is.Equal(c.GetBool(AllowHardDropKey), true)
	is.Equal(c.GetBool(Allow180Key), false)
	is.Equal(c.GetBool(Is20GKey), false)
	is.Equal(c.GetBool(LastRotationOnlyKey), false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := New()
	is.NoErr(c.Load([]string{
		"--board-width", "12",
		"--max-depth", "8",
		"--debug",
		"--allow-180",
		"--is-20g",
		"--last-rotation-only",
	}))
	is.Equal(c.GetInt(BoardWidthKey), 12)
	is.Equal(c.GetInt(MaxDepthKey), 8)
	is.Equal(c.GetBool(DebugKey), true)
	is.Equal(c.GetBool(Allow180Key), true)
	is.Equal(c.GetBool(Is20GKey), true)
	is.Equal(c.GetBool(LastRotationOnlyKey), true)
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("DOWNSTACK_BOARD_WIDTH", "16")
	c := New()
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(BoardWidthKey), 16)
}

func TestRuntimeSet(t *testing.T) {
	is := is.New(t)
	c := New()
	is.NoErr(c.Load(nil))
	c.Set(MaxDepthKey, 3)
	is.Equal(c.GetInt(MaxDepthKey), 3)
}
