package assets

import (
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/egowarka/corridor/worker"
)

// GenerateAll writes the procedural textures and sound effects under dir,
// fanning the work out on the worker pool. Files that already exist are kept
// as-is so user-provided assets are never overwritten.
func GenerateAll(log *logrus.Logger, dir string) error {
	texDir := filepath.Join(dir, "textures")
	sfxDir := filepath.Join(dir, "sfx")
	for _, d := range []string{texDir, sfxDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	type texJob struct {
		name string
		gen  func() image.Image
	}
	texJobs := []texJob{
		{"wall.png", func() image.Image { return WallTexture(rand.New(rand.NewSource(1))) }},
		{"carpet.png", func() image.Image { return CarpetTexture() }},
		{"ceiling.png", func() image.Image { return CeilingTexture(rand.New(rand.NewSource(2))) }},
		{"door.png", func() image.Image { return DoorTexture() }},
	}

	type toneJob struct {
		name           string
		freq, dur, vol float64
	}
	toneJobs := []toneJob{
		{"hum.wav", 110.0, 3.0, 0.2},
		{"rumble.wav", 60.0, 3.0, 0.25},
		{"locked.wav", 220.0, 0.5, 0.4},
	}

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, j := range texJobs {
		path := filepath.Join(texDir, j.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()
			if err := writePNG(path, j.gen()); err != nil {
				fail(err)
				return
			}
			log.Debugf("generated texture %s", path)
		})
	}

	for _, j := range toneJobs {
		path := filepath.Join(sfxDir, j.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		wg.Add(1)
		worker.Submit(func() {
			defer wg.Done()
			if err := WriteTone(path, j.freq, j.dur, j.vol); err != nil {
				fail(err)
				return
			}
			log.Debugf("generated tone %s", path)
		})
	}

	wg.Wait()
	return firstErr
}
