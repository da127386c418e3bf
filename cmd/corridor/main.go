package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/egowarka/corridor/assets"
	"github.com/egowarka/corridor/config"
	"github.com/egowarka/corridor/level"
	"github.com/egowarka/corridor/session"
	"github.com/egowarka/corridor/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	duration := flag.Duration("duration", 10*time.Second, "simulated session length")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = *loaded
	}

	lvl, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("parsing log level: %v", err)
	}
	log.SetLevel(lvl)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			log.Fatalf("initializing sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.Debug.StatsAddr != "" {
		viewer.SetConfiguration(viewer.WithAddr(cfg.Debug.StatsAddr))
		mgr := statsview.New()
		go mgr.Start()
		log.Infof("statsview listening on %s", cfg.Debug.StatsAddr)
	}

	if err := assets.GenerateAll(log, cfg.Assets.Dir); err != nil {
		log.Fatalf("generating assets: %v", err)
	}

	params := cfg.CorridorParams()
	door := level.NewDoor(params.DoorHinge(), cfg.Door.Unlocked)
	w := params.Build(door)

	simulator, err := sim.NewSimulator(w, cfg.SimOptions())
	if err != nil {
		log.Fatalf("building simulator: %v", err)
	}
	state := sim.NewMovementState(params.SpawnPoint())

	dev := &scriptedDevice{}
	lamps := level.NewLamps(cfg.Lamps.Count, cfg.Lamps.Intensity, rand.New(rand.NewSource(time.Now().UnixNano())))
	ses, err := session.NewSession(log, w, simulator, state, dev,
		session.WithDoor(door),
		session.WithLamps(lamps),
		session.WithEvents(logEvents{log: log}),
	)
	if err != nil {
		log.Fatalf("building session: %v", err)
	}

	log.Infof("corridor session starting: strategy=%s duration=%s", cfg.Movement.Strategy, *duration)
	runLoop(log, ses, dev, *duration)
}

// runLoop drives the session at a fixed 60 Hz, once per would-be frame.
func runLoop(log *logrus.Logger, ses *session.Session, dev *scriptedDevice, duration time.Duration) {
	const dt = 1.0 / 60.0
	steps := int(duration.Seconds() / dt)

	for i := 0; i < steps; i++ {
		dev.advance(dt)
		ses.Update(dt)

		if i%60 == 0 {
			snap := ses.Snapshot()
			log.WithFields(logrus.Fields{
				"pos":      snap.Position,
				"yaw":      snap.Yaw,
				"grounded": snap.Grounded,
				"prompt":   snap.Prompt,
				"world":    snap.WorldVersion,
			}).Info("frame")
		}
	}

	snap := ses.Snapshot()
	log.Infof("session finished at %v (grounded=%v)", snap.Position, snap.Grounded)
}

// logEvents forwards simulation signals to the log, standing in for the
// audio/animation layer.
type logEvents struct {
	log *logrus.Logger
}

func (e logEvents) HandleJump(res sim.StepResult) {
	e.log.Debugf("jump at %v", res.Position)
}

func (e logEvents) HandleLand(res sim.StepResult) {
	e.log.Debugf("landed at %v", res.Position)
}

func (e logEvents) HandleDoorLocked() {
	e.log.Info("the door is locked")
}

func (e logEvents) HandleDoorOpening() {
	e.log.Info("the door swings open")
}
