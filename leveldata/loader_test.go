package leveldata

import (
	"os"
	"testing"
	"testing/fstest"
)

func TestLoadPitchMatchesDefault(t *testing.T) {
	got, err := Load(os.DirFS("../assets"), "levels/pitch.tmx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()

	if got.Width != want.Width || got.Height != want.Height {
		t.Errorf("size = %vx%v, want %vx%v", got.Width, got.Height, want.Width, want.Height)
	}
	if got.Pitch != want.Pitch {
		t.Errorf("Pitch = %+v, want %+v", got.Pitch, want.Pitch)
	}
	if len(got.Goals) != len(want.Goals) {
		t.Fatalf("len(Goals) = %d, want %d", len(got.Goals), len(want.Goals))
	}
	for i := range want.Goals {
		if got.Goals[i] != want.Goals[i] {
			t.Errorf("Goals[%d] = %+v, want %+v", i, got.Goals[i], want.Goals[i])
		}
	}
	for i := range want.Starts {
		if got.Starts[i] != want.Starts[i] {
			t.Errorf("Starts[%d] = %+v, want %+v", i, got.Starts[i], want.Starts[i])
		}
	}
}

func TestLoadRejectsWrongStartCount(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="50" height="70" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="PlayerStart">
  <object id="1" x="10" y="10"><point/></object>
 </objectgroup>
</map>
`)},
	}
	if _, err := Load(fsys, "bad.tmx"); err == nil {
		t.Fatal("Load() error = nil, want start count error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}
