package pocketcube

import (
	"errors"

	cfgpkg "github.com/SeamusWaldron/pocketcube/internal/config"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
	"github.com/SeamusWaldron/pocketcube/internal/search"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Sentinel errors for the pocketcube package.
var (
	// Parsing errors
	ErrInvalidNotation = types.ErrInvalidNotation

	// Lookup errors
	ErrUnknownStrategy = heuristic.ErrUnknownStrategy
	ErrKeyNotFound     = search.ErrKeyNotFound
	ErrUnknownBuilder  = pdb.ErrUnknownBuilder

	// Build errors
	ErrNegativeDepth = pdb.ErrNegativeDepth

	// Configuration errors
	ErrInvalidConfig = cfgpkg.ErrInvalidConfig

	// Search errors
	ErrUnsolved = errors.New("pocketcube: no solution found")
)
