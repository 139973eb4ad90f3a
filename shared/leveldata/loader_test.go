package leveldata

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="90" height="50" tilewidth="10" tileheight="10" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="slingshot">
  <object id="1" name="slingshot" x="150" y="350">
   <properties>
    <property name="projectiles" type="int" value="4"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="targets">
  <object id="2" x="780" y="428">
   <point/>
  </object>
  <object id="3" x="650" y="428">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="blocks">
  <object id="4" x="590" y="390" width="20" height="60">
   <properties>
    <property name="material" value="stone"/>
   </properties>
  </object>
  <object id="5" x="590" y="370" width="120" height="20">
   <properties>
    <property name="material" value="glass"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noSlingshotTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="90" height="50" tilewidth="10" tileheight="10" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="targets">
  <object id="1" x="650" y="428">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tower.tmx": {Data: []byte(testTMX)},
	}

	level, err := LoadLevel(fsys, "levels/tower.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "tower" {
		t.Errorf("name = %q, want tower", level.Name)
	}
	if level.Projectiles != 4 {
		t.Errorf("projectiles = %d, want 4", level.Projectiles)
	}
	if len(level.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(level.Targets))
	}
	if level.Targets[0].X != 650 || level.Targets[1].X != 780 {
		t.Errorf("targets should be sorted left to right, got %+v", level.Targets)
	}
	if len(level.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(level.Blocks))
	}

	post := level.Blocks[0]
	if post.X != 600 || post.Y != 420 || post.W != 20 || post.H != 60 {
		t.Errorf("block rectangle should be converted to center, got %+v", post)
	}
	if post.Material != "stone" {
		t.Errorf("material = %q, want stone", post.Material)
	}
	if level.Blocks[1].Material != "glass" {
		t.Errorf("unknown materials are passed through, got %q", level.Blocks[1].Material)
	}
}

func TestLoadLevelWithoutProjectiles(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/broken.tmx": {Data: []byte(noSlingshotTMX)},
	}

	_, err := LoadLevel(fsys, "levels/broken.tmx")
	if !errors.Is(err, ErrNoProjectiles) {
		t.Fatalf("expected ErrNoProjectiles, got %v", err)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(fstest.MapFS{}, "levels/missing.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":     {Data: []byte(testTMX)},
		"levels/a.tmx":     {Data: []byte(testTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	levels, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Fatalf("expected levels [a b], got %d levels", len(levels))
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatalf("expected an error when no levels exist")
	}
}

func TestLevel01(t *testing.T) {
	level := Level01()
	if level.Projectiles != 3 || len(level.Targets) != 2 || len(level.Blocks) != 8 {
		t.Fatalf("unexpected built-in level: %d projectiles, %d targets, %d blocks",
			level.Projectiles, len(level.Targets), len(level.Blocks))
	}
	if err := level.Validate(); err != nil {
		t.Fatalf("built-in level should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := Level{Name: "bad", Projectiles: 1, Blocks: []BlockSpec{{W: 0, H: 10}}}
	if err := bad.Validate(); err == nil {
		t.Errorf("zero width block should be rejected")
	}
	negative := Level{Name: "neg", Projectiles: -2}
	if err := negative.Validate(); err == nil {
		t.Errorf("negative projectile count should be rejected")
	}
}

func TestShippedLevels(t *testing.T) {
	levels, err := LoadAllLevels(os.DirFS("../../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) < 2 {
		t.Fatalf("expected at least 2 shipped levels, got %d", len(levels))
	}
	if !reflect.DeepEqual(*levels[0], Level01()) {
		t.Fatalf("level01.tmx differs from the built-in level:\n%+v\n%+v", *levels[0], Level01())
	}
}
