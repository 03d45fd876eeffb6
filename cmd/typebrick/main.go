// typebrick is a terminal brick-breaker with a typing twist: in letter mode
// each brick carries a letter the player must type before the ball lands on
// it.
//
// Usage:
//
//	typebrick play [variant]   - Play (letter mode by default)
//	typebrick list             - List game variants
//	typebrick scores <variant> - Show high scores
//	typebrick serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.typebrick/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/typebrick/typebrick/internal/games/typebrick"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typebrick",
	Short: "TypeBrick - Break bricks by typing their letters",
	Long: `TypeBrick is a terminal brick-breaker. In letter mode the ball only
breaks the glowing target brick if you type its letter (or tap it) within
the response window before impact; otherwise the brick just bounces the
ball back. Classic mode plays by the usual rules.

Available commands:
  play     - Play (letter mode by default, or pick a variant)
  list     - Show the game variants
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  typebrick play
  typebrick play typebrick_classic
  typebrick play --difficulty hard
  typebrick serve --ssh :2222
  typebrick scores typebrick`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.typebrick/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
