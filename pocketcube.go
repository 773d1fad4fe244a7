// Package pocketcube solves the 2x2x2 pocket cube with heuristic-guided
// search backed by a pattern database of exact distances.
//
// # Features
//
//   - 24-facelet cube model with the R U F quarter-turn move set
//   - A registry of facelet-mismatch and face-distance heuristics
//   - Pattern databases built by relaxation, BFS or parallel BFS
//   - A* search with a database-backed heuristic
//   - Admissibility verification against an optimal oracle
//
// # Quick Start
//
//	ctx := context.Background()
//	solver, err := pocketcube.NewSolver(ctx, pocketcube.WithDatabaseDepth(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := solver.Solve("R U' R' F' U")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pocketcube.FormatMoves(sol.Moves))
//
// # Cube Model
//
// Cubes are immutable values and can be used without a solver:
//
//	c := pocketcube.NewCube(pocketcube.R, pocketcube.UPrime)
//	c = c.Apply(pocketcube.U)
//	fmt.Println("Solved:", c.IsSolved())
//
// # Heuristics
//
// Strategies are registered by name. Distance strategies estimate moves
// to solve; progress strategies grow toward the solved state:
//
//   - zero, manhattan, manhattan-global-max: admissible distances
//   - hamming, blocked-hamming, manhattan-face-max,
//     manhattan-face-max-sum: inadmissible distances
//   - inverse-hamming, inverse-manhattan, inverse-face-max,
//     inverse-face-max-sum, inverse-global-max: progress scores
package pocketcube
