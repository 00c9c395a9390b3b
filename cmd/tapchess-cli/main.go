// tapchess-cli is a terminal front end for the tapchess game controller.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chesslab/tapchess/internal/board"
	"github.com/chesslab/tapchess/internal/engine"
	"github.com/chesslab/tapchess/internal/game"
	"github.com/chesslab/tapchess/internal/puzzle"
)

var (
	skillFlag = flag.Int("skill", int(engine.Skill4), "engine skill level (1-7)")
	humanFlag = flag.Bool("human", false, "two human players, no engine")
	blackFlag = flag.Bool("black", false, "play as black (engine plays white)")
	fenFlag   = flag.String("fen", "", "starting position as a FEN piece placement")
	sideFlag  = flag.String("side", "w", "with -fen: side to move, w or b")
)

func main() {
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.VsAI = !*humanFlag
	cfg.Skill = engine.Skill(*skillFlag)
	if *blackFlag {
		cfg.AIColor = board.White
	}

	ctrl := game.New(cfg)

	if *fenFlag != "" {
		stm := board.White
		if *sideFlag == "b" {
			stm = board.Black
		}
		ctrl.LoadPosition(board.ParsePlacement(*fenFlag), stm)
	}

	fmt.Println("tapchess - type moves like e2e4, or 'help' for commands")
	run(ctrl)
}

func run(ctrl *game.Controller) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		pump(ctrl)
		snap := ctrl.Snapshot()
		printBoard(snap)

		if snap.GameOver() {
			fmt.Printf("Game over: %v\n", snap.Result)
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !dispatch(ctrl, line) {
			return
		}
	}
}

// pump drives the controller until the engine settles.
func pump(ctrl *game.Controller) {
	for {
		ctrl.Update()
		if !ctrl.Thinking() {
			return
		}
		time.Sleep(16 * time.Millisecond)
	}
}

// dispatch handles one input line. Returns false to quit.
func dispatch(ctrl *game.Controller, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit", "q":
		return false

	case "help", "h":
		printHelp()

	case "new":
		ctrl.Reset()

	case "ai":
		if len(fields) == 2 {
			ctrl.SetVsAI(fields[1] == "on")
		}
		fmt.Printf("engine: %v\n", ctrl.Config().VsAI)

	case "skill":
		if len(fields) == 2 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("skill wants a number 1-7")
				break
			}
			ctrl.SetSkill(engine.Skill(n))
		}
		fmt.Printf("skill: %d\n", ctrl.Config().Skill)

	case "side":
		ctrl.SetAIColor(ctrl.Config().AIColor.Other())
		fmt.Printf("engine plays: %v\n", ctrl.Config().AIColor)

	case "puzzles":
		for _, p := range puzzle.Catalog() {
			fmt.Printf("  %-18s %s\n", p.ID, p.Name)
		}

	case "puzzle":
		if len(fields) != 2 {
			fmt.Println("usage: puzzle <id>")
			break
		}
		p, err := puzzle.ByID(fields[1])
		if err != nil {
			fmt.Println(err)
			break
		}
		ctrl.LoadPosition(p.Setup(), p.SideToMove)
		ctrl.RestoreRights(p.Rights())
		fmt.Printf("%s: %s\n", p.Name, p.Hint)

	default:
		playMove(ctrl, fields[0])
	}
	return true
}

// playMove parses a coordinate move like e2e4 or e7e8q and feeds it to
// the controller as two taps plus an optional promotion choice.
func playMove(ctrl *game.Controller, s string) {
	if len(s) != 4 && len(s) != 5 {
		fmt.Printf("unrecognized input %q (try 'help')\n", s)
		return
	}

	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		fmt.Println(err)
		return
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		fmt.Println(err)
		return
	}

	ctrl.Select(from)
	snap := ctrl.Snapshot()
	if snap.Phase != game.PhaseSelected || snap.Selected != from {
		fmt.Println("no piece of yours on", from)
		return
	}
	if !snap.IsTarget(to) {
		fmt.Printf("%v%v is not a legal move\n", from, to)
		ctrl.Select(from) // deselect
		return
	}

	ctrl.Select(to)

	snap = ctrl.Snapshot()
	if snap.Phase == game.PhasePendingPromotion {
		pt := board.Queen
		if len(s) == 5 {
			pt = promotionPiece(s[4])
		}
		ctrl.ConfirmPromotion(pt)
	}
}

func promotionPiece(c byte) board.PieceType {
	switch c {
	case 'n':
		return board.Knight
	case 'b':
		return board.Bishop
	case 'r':
		return board.Rook
	default:
		return board.Queen
	}
}

func printBoard(snap game.Snapshot) {
	fmt.Println(snap.Board.String())
	switch {
	case snap.GameOver():
	case board.InCheck(&snap.Board, snap.SideToMove):
		fmt.Printf("%v to move (check!)\n", snap.SideToMove)
	default:
		fmt.Printf("%v to move\n", snap.SideToMove)
	}
}

func printHelp() {
	fmt.Println(`commands:
  e2e4        play a move (e7e8q to promote to a queen)
  new         start a new game
  ai on|off   toggle the engine opponent
  side        swap which color the engine plays
  skill <n>   set engine skill (1-7)
  puzzles     list preset positions
  puzzle <id> load a preset position
  quit        exit`)
}

func init() {
	log.SetFlags(0)
}
