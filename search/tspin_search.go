package search

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/move"
	"github.com/domino14/downstack/tiles"
)

// TSpinSearch runs the breadth-first search tuned for T-spin setups. The
// landing set is the inner search's, post-processed per the TSpinConfig.
type TSpinSearch struct {
	inner *PathSearch
	tcfg  TSpinConfig
}

// NewTSpinSearch creates a T-spin oriented search. RequireLastRotation
// forces the inner search to report only rotation-finishing landings.
func NewTSpinSearch(cfg Config, tcfg TSpinConfig) *TSpinSearch {
	if tcfg.RequireLastRotation {
		cfg.LastRotationOnly = true
	}
	return &TSpinSearch{inner: NewPathSearch(cfg), tcfg: tcfg}
}

func (s *TSpinSearch) Name() string { return "tspinsearch" }

func (s *TSpinSearch) FindLandingPositions(b *board.Board, p *tiles.Piece, maxDepth int) ([]LandingPosition, error) {
	landings, err := s.inner.FindLandingPositions(b, p, maxDepth)
	if err != nil {
		return nil, err
	}
	if !s.tcfg.AllowMiniTSpins {
		landings = lo.Map(landings, func(lp LandingPosition, _ int) LandingPosition {
			if lp.TSpin == TSpinMini {
				lp.TSpin = TSpinNone
			}
			return lp
		})
	}
	if s.tcfg.PrioritizeTSpins {
		sort.SliceStable(landings, func(i, j int) bool {
			return landings[i].TSpin > landings[j].TSpin
		})
	}
	return landings, nil
}

func (s *TSpinSearch) FindPath(b *board.Board, p *tiles.Piece, target tiles.PieceState, maxDepth int) ([]move.Move, error) {
	return s.inner.FindPath(b, p, target, maxDepth)
}
