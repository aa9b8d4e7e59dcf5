// Package assets loads the sprite sheet used to draw entities.
// The sheet is read once at startup; a missing or malformed sheet is a fatal
// error for the caller.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// Sprite names every sheet must define.
const (
	Player     = "player"
	Shark      = "shark"
	Projectile = "projectile"
	Wall       = "wall"
)

// Required lists the sprites the game draws.
var Required = []string{Player, Shark, Projectile, Wall}

// ErrMissingSprite is returned when a sheet lacks a required sprite.
var ErrMissingSprite = errors.New("assets: missing sprite")

//go:embed defaults/sprites.yaml
var defaultSheetYAML []byte

// Sprite is a tile of glyphs drawn over an entity's body.
type Sprite struct {
	Rows  []string
	Color core.Color

	runes [][]rune
}

// Width returns the widest row in runes.
func (s *Sprite) Width() int {
	w := 0
	for _, r := range s.runes {
		w = core.Max(w, len(r))
	}
	return w
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return len(s.runes)
}

// At returns the glyph at (x, y) of the tiled sprite.
// Short rows are padded with spaces.
func (s *Sprite) At(x, y int) rune {
	if len(s.runes) == 0 || x < 0 || y < 0 {
		return ' '
	}
	row := s.runes[y%len(s.runes)]
	w := s.Width()
	if w == 0 {
		return ' '
	}
	x %= w
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

// Draw tiles the sprite over a w by h block of cells at (x, y).
// Space glyphs are transparent.
func (s *Sprite) Draw(dst *core.Screen, x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := s.At(dx, dy)
			if r == ' ' {
				continue
			}
			dst.SetColor(x+dx, y+dy, r, s.Color)
		}
	}
}

// Sheet is a loaded set of named sprites.
type Sheet struct {
	sprites map[string]*Sprite
}

// Get returns the named sprite, or nil if it is absent.
func (sh *Sheet) Get(name string) *Sprite {
	if sh == nil {
		return nil
	}
	return sh.sprites[name]
}

// Names returns the sprite names in the sheet, sorted.
func (sh *Sheet) Names() []string {
	names := make([]string, 0, len(sh.sprites))
	for name := range sh.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type sheetFile struct {
	Sprites map[string]struct {
		Color string   `yaml:"color"`
		Rows  []string `yaml:"rows"`
	} `yaml:"sprites"`
}

// Parse decodes and validates a sprite sheet.
func Parse(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: parse sheet: %w", err)
	}

	sh := &Sheet{sprites: make(map[string]*Sprite, len(f.Sprites))}
	for name, raw := range f.Sprites {
		color, ok := core.ParseColor(raw.Color)
		if !ok {
			return nil, fmt.Errorf("assets: sprite %q: unknown color %q", name, raw.Color)
		}
		sp := &Sprite{Rows: raw.Rows, Color: color}
		for _, row := range raw.Rows {
			sp.runes = append(sp.runes, []rune(row))
		}
		if sp.Width() == 0 || strings.TrimSpace(strings.Join(raw.Rows, "")) == "" {
			return nil, fmt.Errorf("assets: sprite %q has no glyphs", name)
		}
		sh.sprites[name] = sp
	}

	for _, name := range Required {
		if _, ok := sh.sprites[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingSprite, name)
		}
	}
	return sh, nil
}

// Load reads the sprite sheet at path, or the embedded sheet when path is empty.
func Load(path string) (*Sheet, error) {
	data := defaultSheetYAML
	source := "embedded"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: read sheet: %w", err)
		}
		data = b
		source = path
	}

	sh, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debug("sprite sheet loaded", "source", source, "sprites", len(sh.sprites))
	return sh, nil
}

// Default returns the embedded sprite sheet. It panics if the embedded sheet
// is invalid, which is a build defect.
func Default() *Sheet {
	sh, err := Parse(defaultSheetYAML)
	if err != nil {
		panic(err)
	}
	return sh
}
