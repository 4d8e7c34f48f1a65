//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// quitKeys close the window.
var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

func quitRequested() bool {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
