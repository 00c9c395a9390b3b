// tapchess - a tap-to-move chess game built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chesslab/tapchess/internal/ui"
)

func main() {
	game := ui.NewGame()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("tapchess")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
