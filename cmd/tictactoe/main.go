package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mctree/mctree/games/tictactoe"
	"github.com/mctree/mctree/pkg/mcts"
)

// Play tic-tac-toe against the engine. Moves are entered in algebraic
// form, a1 is the bottom left square.

func main() {
	simulations := flag.Int("sims", 5000, "simulations per engine move")
	exploration := flag.Float64("c", math.Sqrt2, "exploration constant")
	humanFirst := flag.Bool("first", true, "take crosses and move first")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	out := termenv.NewOutput(os.Stdout)
	tree := tictactoe.NewSearchTree(tictactoe.New(), mcts.WithExploration(*exploration))

	human := tictactoe.Cross
	if !*humanFirst {
		human = tictactoe.Circle
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		pos := tree.GameState()
		printBoard(out, pos)

		if term, over := pos.EndStatus(); over {
			printResult(out, term, human)
			return
		}

		var move tictactoe.Square
		if pos.Player() == human {
			move = readMove(reader)
		} else {
			var err error
			move, err = tree.Search(*simulations)
			if err != nil {
				log.Fatal().Err(err).Msg("tictactoe: search failed")
			}
			share := tree.Policy()[move]
			fmt.Printf("engine plays %s (%.0f%% of visits)\n",
				out.String(move.String()).Bold(), share*100)
		}

		if err := tree.Renew(move); err != nil {
			fmt.Println(out.String("that square is taken").Foreground(termenv.ANSIRed))
		}
	}
}

func readMove(reader *bufio.Reader) tictactoe.Square {
	for {
		fmt.Print("your move> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			os.Exit(0)
		}

		sq, err := tictactoe.ParseSquare(strings.TrimSpace(strings.ToLower(line)))
		if err != nil {
			fmt.Println("enter a square like b2")
			continue
		}
		return sq
	}
}

func printBoard(out *termenv.Output, pos tictactoe.Position) {
	fmt.Println()
	for row := 0; row < 3; row++ {
		line := fmt.Sprintf("%d  ", 3-row)
		for col := 0; col < 3; col++ {
			switch pos.At(tictactoe.Square(row*3 + col)) {
			case tictactoe.Cross:
				line += out.String("x ").Foreground(termenv.ANSIRed).String()
			case tictactoe.Circle:
				line += out.String("o ").Foreground(termenv.ANSICyan).String()
			default:
				line += ". "
			}
		}
		fmt.Println(line)
	}
	fmt.Println("   a b c")
	fmt.Println()
}

func printResult(out *termenv.Output, term tictactoe.Termination, human tictactoe.Mark) {
	switch {
	case term == tictactoe.TerminationDraw:
		fmt.Println(out.String("draw").Foreground(termenv.ANSIYellow))
	case human.Reward(term) == 1:
		fmt.Println(out.String("you win").Foreground(termenv.ANSIGreen))
	default:
		fmt.Println(out.String("engine wins").Foreground(termenv.ANSIRed))
	}
}
