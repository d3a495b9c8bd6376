package search

// Config selects which moves the search may use and how landings are
// filtered.
type Config struct {
	// AllowRotate180 enables 180-degree turns, provided the active
	// rotation system also supports them.
	AllowRotate180 bool
	// AllowHardDrop enables the hard-drop move during expansion.
	AllowHardDrop bool
	// AllowSoftDrop enables the one-row Down move during expansion.
	AllowSoftDrop bool
	// Is20G makes gravity instantaneous: every expanded state is pulled
	// to its resting row before it enters the frontier.
	Is20G bool
	// LastRotationOnly reports only landings whose final move is a
	// rotation.
	LastRotationOnly bool
}

// DefaultConfig enables soft and hard drops and nothing else.
func DefaultConfig() Config {
	return Config{
		AllowHardDrop: true,
		AllowSoftDrop: true,
	}
}

// TSpinConfig tunes the T-spin oriented search on top of a base Config.
type TSpinConfig struct {
	// RequireLastRotation restricts the landing set to placements that
	// finish with a rotation, the precondition for any T-spin.
	RequireLastRotation bool
	// AllowMiniTSpins keeps the Mini classification; when false, Mini
	// landings are demoted to None.
	AllowMiniTSpins bool
	// PrioritizeTSpins sorts the result so Regular T-spins come first,
	// then Minis, then everything else.
	PrioritizeTSpins bool
}
