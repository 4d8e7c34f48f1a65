package font6x8

import (
	"image/color"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a monospace 6x8 bitmap font for status overlays.
//
// Runes are looked up by their Windows-1251 code. Lower case Latin letters
// share the upper case glyphs; anything without a glyph draws as '?'.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

const (
	cellW = 6
	cellH = 8
)

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := Glyph(g.r)
	if !ok {
		return
	}
	for row := 0; row < cellH; row++ {
		b := rows[row]
		// Bit 5 is the leftmost pixel.
		for col := 0; col < cellW; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    cellW,
		Height:   cellH,
		XAdvance: cellW,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return cellH }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// Glyph returns the row bitmaps drawn for r. The second result is false only
// for control characters, which draw nothing.
func Glyph(r rune) ([cellH]byte, bool) {
	if r < 0x20 {
		return [cellH]byte{}, false
	}
	b, ok := charmap.Windows1251.EncodeRune(r)
	if !ok {
		b = '?'
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	g, ok := glyphs[b]
	if !ok {
		g = glyphs['?']
	}
	return g, true
}

var glyphs = map[byte][cellH]byte{}

func init() {
	for code, art := range glyphArt {
		glyphs[code] = parseGlyph(art)
	}
}

// parseGlyph turns seven space-separated rows of '#' and '.' into row bitmaps.
// The eighth row stays blank for line spacing.
func parseGlyph(art string) [cellH]byte {
	var g [cellH]byte
	for i, row := range strings.Fields(art) {
		if i >= cellH {
			break
		}
		for col, ch := range row {
			if ch == '#' && col < cellW {
				g[i] |= 0x20 >> col
			}
		}
	}
	return g
}

// Keys are Windows-1251 codes.
var glyphArt = map[byte]string{
	' ':  "..... ..... ..... ..... ..... ..... .....",
	'0':  ".###. #...# #..## #.#.# ##..# #...# .###.",
	'1':  "..#.. .##.. ..#.. ..#.. ..#.. ..#.. .###.",
	'2':  ".###. #...# ....# ...#. ..#.. .#... #####",
	'3':  "##### ...#. ..#.. ...#. ....# #...# .###.",
	'4':  "...#. ..##. .#.#. #..#. ##### ...#. ...#.",
	'5':  "##### #.... ####. ....# ....# #...# .###.",
	'6':  "..##. .#... #.... ####. #...# #...# .###.",
	'7':  "##### ....# ...#. ..#.. .#... .#... .#...",
	'8':  ".###. #...# #...# .###. #...# #...# .###.",
	'9':  ".###. #...# #...# .#### ....# ...#. .##..",
	'A':  ".###. #...# #...# ##### #...# #...# #...#",
	'B':  "####. #...# #...# ####. #...# #...# ####.",
	'C':  ".###. #...# #.... #.... #.... #...# .###.",
	'D':  "###.. #..#. #...# #...# #...# #..#. ###..",
	'E':  "##### #.... #.... ####. #.... #.... #####",
	'F':  "##### #.... #.... ####. #.... #.... #....",
	'G':  ".###. #...# #.... #.### #...# #...# .####",
	'H':  "#...# #...# #...# ##### #...# #...# #...#",
	'I':  ".###. ..#.. ..#.. ..#.. ..#.. ..#.. .###.",
	'J':  "..### ...#. ...#. ...#. ...#. #..#. .##..",
	'K':  "#...# #..#. #.#.. ##... #.#.. #..#. #...#",
	'L':  "#.... #.... #.... #.... #.... #.... #####",
	'M':  "#...# ##.## #.#.# #.#.# #...# #...# #...#",
	'N':  "#...# #...# ##..# #.#.# #..## #...# #...#",
	'O':  ".###. #...# #...# #...# #...# #...# .###.",
	'P':  "####. #...# #...# ####. #.... #.... #....",
	'Q':  ".###. #...# #...# #...# #.#.# #..#. .##.#",
	'R':  "####. #...# #...# ####. #.#.. #..#. #...#",
	'S':  ".#### #.... #.... .###. ....# ....# ####.",
	'T':  "##### ..#.. ..#.. ..#.. ..#.. ..#.. ..#..",
	'U':  "#...# #...# #...# #...# #...# #...# .###.",
	'V':  "#...# #...# #...# #...# #...# .#.#. ..#..",
	'W':  "#...# #...# #...# #.#.# #.#.# #.#.# .#.#.",
	'X':  "#...# #...# .#.#. ..#.. .#.#. #...# #...#",
	'Y':  "#...# #...# .#.#. ..#.. ..#.. ..#.. ..#..",
	'Z':  "##### ....# ...#. ..#.. .#... #.... #####",
	':':  "..... .##.. .##.. ..... .##.. .##.. .....",
	'.':  "..... ..... ..... ..... ..... .##.. .##..",
	',':  "..... ..... ..... ..... .##.. ..#.. .#...",
	'-':  "..... ..... ..... ##### ..... ..... .....",
	'+':  "..... ..#.. ..#.. ##### ..#.. ..#.. .....",
	'=':  "..... ..... ##### ..... ##### ..... .....",
	'/':  "..... ....# ...#. ..#.. .#... #.... .....",
	'%':  "##... ##..# ...#. ..#.. .#... #..## ...##",
	'(':  "...#. ..#.. .#... .#... .#... ..#.. ...#.",
	')':  ".#... ..#.. ...#. ...#. ...#. ..#.. .#...",
	'?':  ".###. #...# ....# ...#. ..#.. ..... ..#..",
	0xb0: ".##.. #..#. #..#. .##.. ..... ..... .....", // degree sign
}
