package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/slingshot/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelLoader reads the embedded level files.
type LevelLoader struct {
	fsys fs.FS
	dir  string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: levelsDir}
}

// NewLevelLoaderFS reads levels from another filesystem, such as os.DirFS
// for a level directory given on the command line.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels returns every level, sorted by name. When no level file can be
// read the built-in first level is returned on its own.
func (l *LevelLoader) LoadLevels() []leveldata.Level {
	loaded, err := leveldata.LoadAllLevels(l.fsys, l.dir)
	if err != nil {
		log.Printf("Warning: falling back to the built-in level: %v", err)
		return []leveldata.Level{leveldata.Level01()}
	}

	levels := make([]leveldata.Level, 0, len(loaded))
	for _, lvl := range loaded {
		levels = append(levels, *lvl)
	}
	log.Printf("Loaded %d levels from %s", len(levels), l.dir)
	return levels
}

// LoadLevel loads a single level by name, without the .tmx extension.
func (l *LevelLoader) LoadLevel(name string) (leveldata.Level, error) {
	lvl, err := leveldata.LoadLevel(l.fsys, fmt.Sprintf("%s/%s.tmx", l.dir, name))
	if err != nil {
		return leveldata.Level{}, err
	}
	return *lvl, nil
}

// FindLevel returns the index of the named level, or -1 when there is none.
func FindLevel(levels []leveldata.Level, name string) int {
	for i, lvl := range levels {
		if lvl.Name == name {
			return i
		}
	}
	return -1
}
