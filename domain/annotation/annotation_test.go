package annotation

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/landmark-editor/domain/landmark"
)

func TestLandmarkPath(t *testing.T) {
	cases := []struct {
		img, suffix, want string
	}{
		{"/data/face.jpg", "", "/data/face_ldmks.txt"},
		{"/data/face.01.png", "_ldmks.txt", "/data/face.01_ldmks.txt"},
		{"face", "_bbox.txt", "face_bbox.txt"},
	}
	for _, c := range cases {
		if got := LandmarkPath(c.img, c.suffix); got != c.want {
			t.Errorf("LandmarkPath(%q,%q)=%q want %q", c.img, c.suffix, got, c.want)
		}
	}
}

func TestLoad_MissingIsNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope_ldmks.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad_ldmks.txt")
	if err := os.WriteFile(p, []byte("1 2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	var fe *landmark.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 2 {
		t.Fatalf("expected line 2, got %d", fe.Line)
	}
}

func TestSave_EmptyWritesEmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "img_ldmks.txt")
	if err := Save(p, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty file, got %q", b)
	}
	pts, err := Load(p)
	if err != nil || len(pts) != 0 {
		t.Fatalf("expected empty load, got %v %v", pts, err)
	}
}

func TestSave_RoundTripAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "img_ldmks.txt")
	if err := os.WriteFile(p, []byte("9 9\n9 9\n9 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	in := []landmark.Point{{X: 1.25, Y: 2.5}, {X: 1234.567891, Y: 0.0000004}}
	if err := Save(p, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d points, got %d", len(in), len(out))
	}
	for i := range in {
		if math.Abs(in[i].X-out[i].X) > 1e-4 || math.Abs(in[i].Y-out[i].Y) > 1e-4 {
			t.Fatalf("point %d: %v != %v", i, in[i], out[i])
		}
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected temp file cleaned up, dir has %d entries", len(entries))
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "missing", "x_ldmks.txt"), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDelete_RemovesImageAndSiblings(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.jpg")
	for _, p := range []string{img, filepath.Join(dir, "a_ldmks.txt"), filepath.Join(dir, "b.jpg")} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if errs := Delete(img, DefaultSiblings); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, p := range []string{img, filepath.Join(dir, "a_ldmks.txt")} {
		if _, err := os.Stat(p); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("%s still exists", p)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "b.jpg")); err != nil {
		t.Fatalf("unrelated file removed: %v", err)
	}
}

func TestDelete_MissingImageReported(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "gone.png")
	side := filepath.Join(dir, "gone_bbox.txt")
	if err := os.WriteFile(side, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	errs := Delete(img, DefaultSiblings)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	var de *DeleteError
	if !errors.As(errs[0], &de) || de.Path != img {
		t.Fatalf("expected DeleteError for image, got %v", errs[0])
	}
	if _, err := os.Stat(side); !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("sibling should still be removed")
	}
}

func TestSiblings_Dedup(t *testing.T) {
	got := Siblings("/x/y.jpg", []string{"_ldmks.txt", "", "_ldmks.txt", "_bbox.txt"})
	want := []string{"/x/y_ldmks.txt", "/x/y_bbox.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
