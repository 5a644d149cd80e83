package ttable

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func fixturePaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		SourceVocab: writeFile(t, dir, "src.vcb", "1 chat 120\n2 noir 45\n"),
		TargetVocab: writeFile(t, dir, "tgt.vcb", "1 cat 98\n2 black 40\n"),
		Forward: writeFile(t, dir, "fwd.t3.final", `1 1 0.8
1 2 0.1
2 2 0.9
0 1 0.3
`),
		Inverse: writeFile(t, dir, "inv.t3.final", `1 1 0.7
2 2 0.85
2 0 0.2
`),
	}
}

func TestLoad(t *testing.T) {
	table, err := Load(fixturePaths(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	fwd := table.Forward("chat")
	if fwd["cat"] != 0.8 || fwd["black"] != 0.1 {
		t.Errorf("Forward(chat) = %v, want cat:0.8 black:0.1", fwd)
	}
	if got := table.Forward("noir")["black"]; got != 0.9 {
		t.Errorf("Forward(noir)[black] = %v, want 0.9", got)
	}
	inv := table.Inverse("cat")
	if inv["chat"] != 0.7 {
		t.Errorf("Inverse(cat) = %v, want chat:0.7", inv)
	}
	if dist := table.Forward("unseen"); dist != nil {
		t.Errorf("Forward(unseen) = %v, want nil", dist)
	}
}

func TestLoadSkipsNullAlignments(t *testing.T) {
	table, err := Load(fixturePaths(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// "0 1 0.3" aligns the null token; it must not surface anywhere.
	for _, dist := range [][]map[string]float64{
		{table.Forward("chat"), table.Forward("noir")},
		{table.Inverse("cat"), table.Inverse("black")},
	} {
		for _, d := range dist {
			if _, ok := d[""]; ok {
				t.Error("null token leaked into a distribution")
			}
		}
	}
	if got := table.Inverse("black")["noir"]; got != 0.85 {
		t.Errorf("Inverse(black)[noir] = %v, want 0.85", got)
	}
}

func TestLoadWithoutInverse(t *testing.T) {
	paths := fixturePaths(t)
	paths.Inverse = ""
	table, err := Load(paths)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Forward("chat") == nil {
		t.Error("forward direction should still load")
	}
	if dist := table.Inverse("cat"); dist != nil {
		t.Errorf("Inverse without table = %v, want nil", dist)
	}
}

func TestLoadErrors(t *testing.T) {
	base := fixturePaths(t)
	dir := t.TempDir()

	t.Run("missing vocab file", func(t *testing.T) {
		p := base
		p.SourceVocab = filepath.Join(dir, "absent.vcb")
		if _, err := Load(p); err == nil {
			t.Error("Load succeeded, want error")
		}
	})
	t.Run("malformed vocab line", func(t *testing.T) {
		p := base
		p.SourceVocab = writeFile(t, dir, "bad.vcb", "1 chat\n")
		if _, err := Load(p); err == nil {
			t.Error("Load succeeded, want error")
		}
	})
	t.Run("duplicate vocab id", func(t *testing.T) {
		p := base
		p.SourceVocab = writeFile(t, dir, "dup.vcb", "1 chat 10\n1 noir 5\n")
		if _, err := Load(p); err == nil {
			t.Error("Load succeeded, want error")
		}
	})
	t.Run("unknown table id", func(t *testing.T) {
		p := base
		p.Forward = writeFile(t, dir, "bad.t3", "9 1 0.5\n")
		if _, err := Load(p); err == nil {
			t.Error("Load succeeded, want error")
		}
	})
	t.Run("malformed table entry", func(t *testing.T) {
		p := base
		p.Forward = writeFile(t, dir, "mal.t3", "1 1 high\n")
		if _, err := Load(p); err == nil {
			t.Error("Load succeeded, want error")
		}
	})
}
