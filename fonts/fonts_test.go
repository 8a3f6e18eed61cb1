package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("LoadFontWithSize() error = nil, want parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() on an unknown font did not panic")
		}
	}()
	FontName("missing").Get()
}
