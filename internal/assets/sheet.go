package assets

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-shooter/internal/core"
)

//go:embed sheets/default.yaml
var defaultSheet []byte

// YAMLSheet is the on-disk sprite sheet format.
type YAMLSheet struct {
	Palette map[string]string `yaml:"palette"`
	Sprites []YAMLSprite      `yaml:"sprites"`
}

// YAMLSprite is a single sprite in a sheet. Art is one line per row, one
// palette character per pixel.
type YAMLSprite struct {
	ID    string `yaml:"id"`
	Scale int    `yaml:"scale"`
	Art   string `yaml:"art"`
}

func errSprite(id, format string, args ...any) error {
	return fmt.Errorf("assets: sprite %q: %s", id, fmt.Sprintf(format, args...))
}

// ParseSheet parses a YAML sprite sheet into sprites.
func ParseSheet(data []byte) ([]*Sprite, error) {
	var ys YAMLSheet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}

	palette := make(map[rune]core.Color, len(ys.Palette))
	for key, name := range ys.Palette {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("assets: palette key %q must be a single character", key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("assets: palette key %q: unknown color %q", key, name)
		}
		palette[r[0]] = c
	}

	result := make([]*Sprite, 0, len(ys.Sprites))
	for _, s := range ys.Sprites {
		lines := strings.Split(strings.TrimRight(s.Art, "\n"), "\n")
		rows := make([][]core.Color, len(lines))
		for y, line := range lines {
			row := make([]core.Color, 0, len(line))
			for _, ch := range line {
				c, ok := palette[ch]
				if !ok {
					return nil, errSprite(s.ID, "row %d: character %q not in palette", y, ch)
				}
				row = append(row, c)
			}
			rows[y] = row
		}

		sprite, err := NewSprite(s.ID, s.Scale, rows)
		if err != nil {
			return nil, err
		}
		result = append(result, sprite)
	}
	return result, nil
}

// LoadSheetFile parses a sprite sheet from disk and replaces any registered
// sprites with the same ids.
func LoadSheetFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}
	parsed, err := ParseSheet(data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse sprite sheet %s: %w", path, err)
	}
	for _, s := range parsed {
		Replace(s)
	}
	return len(parsed), nil
}

func init() {
	parsed, err := ParseSheet(defaultSheet)
	if err != nil {
		panic(err)
	}
	for _, s := range parsed {
		Register(s)
	}
}
