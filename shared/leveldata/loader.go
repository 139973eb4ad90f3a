package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from level files.
const (
	GroupSlingshot = "slingshot"
	GroupTargets   = "targets"
	GroupBlocks    = "blocks"
)

// LoadLevel parses a TMX file into a level descriptor. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS (simulator).
//
// The slingshot group holds one object with an int "projectiles" property.
// Targets are point objects at the creature center. Blocks are rectangles
// with a "material" property.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Projectiles: -1,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSlingshot:
			for _, o := range og.Objects {
				if o.Properties.GetString("projectiles") == "" {
					continue
				}
				level.Projectiles = o.Properties.GetInt("projectiles")
			}
		case GroupTargets:
			for _, o := range og.Objects {
				level.Targets = append(level.Targets, TargetSpawn{X: o.X, Y: o.Y})
			}
		case GroupBlocks:
			for _, o := range og.Objects {
				level.Blocks = append(level.Blocks, BlockSpec{
					X:        o.X + o.Width/2,
					Y:        o.Y + o.Height/2,
					W:        o.Width,
					H:        o.Height,
					Material: o.Properties.GetString("material"),
				})
			}
		}
	}

	if level.Projectiles < 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoProjectiles)
	}

	// Sort targets left-to-right for a stable spawn order
	sort.SliceStable(level.Targets, func(i, j int) bool {
		return level.Targets[i].X < level.Targets[j].X
	})

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}
