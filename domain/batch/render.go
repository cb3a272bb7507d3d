package batch

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/soocke/landmark-editor/domain/editor"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
	"github.com/soocke/landmark-editor/ui/images"
)

// Progress is advanced once per processed image. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(n int) error
}

// Result is the outcome for one input image.
type Result struct {
	Image     string
	Output    string
	Landmarks int
	Missing   bool // no landmark file; the image was rendered bare
	Err       error
}

// Renderer burns landmark overlays into copies of images.
type Renderer struct {
	Scheme     landmark.Scheme
	Style      render.Style
	Bound      image.Point // zero renders at native resolution
	LineWidth  float64
	ShowLabels bool
	Suffix     string
	// CropPadding crops output to the landmark bounding box grown by this
	// many pixels. Negative disables cropping.
	CropPadding int
	Workers     int
	Logger      *slog.Logger
	Progress    Progress
}

// RenderAll renders every image into outDir as <base>.png with a bounded
// worker pool. Per-image failures are reported in the results; the returned
// error is set only when outDir cannot be created or ctx is cancelled.
func (r *Renderer) RenderAll(ctx context.Context, imgs []string, outDir string) ([]Result, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	job := uuid.New().String()
	logger := r.Logger
	if logger != nil {
		logger = logger.With("job", job)
		logger.Info("render started", "images", len(imgs), "out", outDir, "workers", workers)
	}

	results := make([]Result, len(imgs))
	var mu sync.Mutex
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range imgs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := Result{Image: path}
			if err := ctx.Err(); err != nil {
				res.Err = err
			} else {
				res = r.renderOne(path, outDir)
			}
			if res.Err != nil && logger != nil {
				logger.Warn("render failed", "image", path, "error", res.Err)
			}
			mu.Lock()
			results[i] = res
			if r.Progress != nil {
				_ = r.Progress.Add(1)
			}
			mu.Unlock()
		}(i, path)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Image == "" {
				results[i] = Result{Image: imgs[i], Err: err}
			}
		}
		return results, err
	}
	if logger != nil {
		logger.Info("render finished", "images", len(imgs), "failed", len(Failed(results)))
	}
	return results, nil
}

// OutputPath is where RenderAll writes the overlay for img.
func OutputPath(img, outDir string) string {
	base := filepath.Base(img)
	return filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".png")
}

// renderOne runs on a worker; everything it builds is private to the call.
func (r *Renderer) renderOne(path, outDir string) Result {
	res := Result{Image: path}
	src, err := images.Open(path)
	if err != nil {
		res.Err = err
		return res
	}
	native := src.Bounds().Size()
	sess, err := editor.OpenSession(path, native, editor.Options{
		Bound:  r.Bound,
		Suffix: r.Suffix,
		Scheme: r.Scheme,
		Style:  r.Style,
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Landmarks = sess.Store.Len()
	res.Missing = sess.Missing

	size := sess.Scaler.DisplaySize()
	base := images.AcquireFrame(image.Rect(0, 0, size.X, size.Y))
	images.ScaleInto(base, src)
	raster := render.Rasterizer{LineWidth: r.LineWidth, ShowLabels: r.ShowLabels}
	out := raster.Compose(base, sess.Scene)
	images.RecycleFrame(base)
	if r.CropPadding >= 0 && sess.Store.Len() > 0 {
		out, _, err = images.Crop(out, images.Pad(bounds(sess.Store.Points()), r.CropPadding))
		if err != nil {
			res.Err = err
			return res
		}
	}

	res.Output = OutputPath(path, outDir)
	if err := writePNG(res.Output, out); err != nil {
		res.Err = err
	}
	return res
}

// bounds returns the integer box covering pts.
func bounds(pts []landmark.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
