package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/domino14/downstack/board"
	"github.com/domino14/downstack/tiles"
)

// FindLandingPositionsForPieces runs one search per piece type
// concurrently and collects the landings by type. Every search gets its
// own board snapshot and its own spawn-state piece, so the caller's board
// is never touched. An individual search cannot be interrupted; the
// context only gates searches that have not started yet.
func FindLandingPositionsForPieces(ctx context.Context, alg Algorithm, b *board.Board,
	rs tiles.RotationSystem, pieceTypes []tiles.PieceType, maxDepth int) (
	map[tiles.PieceType][]LandingPosition, error) {

	results := make([][]LandingPosition, len(pieceTypes))
	g, ctx := errgroup.WithContext(ctx)
	for i, pt := range pieceTypes {
		i, pt := i, pt
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			snapshot := b.Copy()
			piece, err := tiles.NewPiece(rs.InitialState(pt, b.Width(), b.Height()), rs.Clone())
			if err != nil {
				return err
			}
			landings, err := alg.FindLandingPositions(snapshot, piece, maxDepth)
			if err != nil {
				return err
			}
			results[i] = landings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byType := make(map[tiles.PieceType][]LandingPosition, len(pieceTypes))
	for i, pt := range pieceTypes {
		byType[pt] = results[i]
	}
	return byType, nil
}
