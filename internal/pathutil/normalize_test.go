package pathutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		sep  Separators
		want string
	}{
		{"unix canonical", "a/b/c.json", Unix, "a/b/c.json"},
		{"unix keeps backslash", `a\b\c.json`, Unix, `a\b\c.json`},
		{"windows canonical", "a/b/c.json", Windows, "a/b/c.json"},
		{"windows drive path", `C:\work\schema.json`, Windows, "C:/work/schema.json"},
		{"windows mixed", `src\main/java\gen`, Windows, "src/main/java/gen"},
		{"empty", "", Windows, ""},
		{"alternate equals canonical", `a\b`, Separators{Canonical: '\\', Alternate: '\\'}, `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.path, tt.sep)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := `out\generated\src`
	once := Normalize(in, Windows)
	if twice := Normalize(once, Windows); twice != once {
		t.Errorf("second Normalize changed %q to %q", once, twice)
	}
}

func TestForGOOS(t *testing.T) {
	if got := ForGOOS("windows"); got != Windows {
		t.Errorf("ForGOOS(windows) = %+v", got)
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		if got := ForGOOS(goos); got.HasAlternate() {
			t.Errorf("ForGOOS(%s) has alternate separator %q", goos, got.Alternate)
		}
	}
}
