package main

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	orbital "github.com/SeanDohertyPhotos/orbital-mechanics"
)

// This code only reads the scenario file and runs the simulation: either the
// frame-driven controller (realtime mode) or the offline RK4 propagation.

const defaultScenario = "~~unset~~"

var (
	scenario string
	realtime bool
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
	flag.BoolVar(&realtime, "realtime", false, "run the frame-driven controller instead of the RK4 propagation")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(scenario)
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	cfg, err := orbital.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	// Read spacecraft
	scName := v.GetString("spacecraft.name")
	dryMass := v.GetFloat64("spacecraft.dry")
	fuelMass := v.GetFloat64("spacecraft.fuel")

	// Read orbit
	bodyName := v.GetString("orbit.body")
	body, err := orbital.CelestialObjectFromString(bodyName)
	if err != nil {
		log.Fatalf("could not understand body `%s`: %s", bodyName, err)
	}
	a := v.GetFloat64("orbit.sma")
	e := v.GetFloat64("orbit.ecc")
	i := v.GetFloat64("orbit.inc")
	Ω := v.GetFloat64("orbit.RAAN")
	ω := v.GetFloat64("orbit.argPeri")
	ν := v.GetFloat64("orbit.tAnomaly")
	orbit := orbital.NewOrbitFromOE(a, e, i, Ω, ω, ν, body)
	R, V := orbit.RV()
	sc := orbital.NewSpacecraft(scName, dryMass, fuelMass, R, V, logger)
	if verbose {
		logger.Log("level", "info", "subsys", "conf", "orbit", orbit, "period(s)", orbit.Period())
	}

	duration := v.GetDuration("mission.duration")
	if duration <= 0 {
		log.Fatal("mission.duration must be positive")
	}
	start := time.Now().UTC()
	export := orbital.ExportConfig{
		Filename:  scName,
		OutputDir: cfg.OutputDir,
		AsCSV:     v.GetBool("export.csv"),
		Timestamp: v.GetBool("export.timestamp"),
	}

	if !realtime {
		step := v.GetDuration("mission.step")
		if step <= 0 {
			step = orbital.StepSize
		}
		prop := orbital.NewPrecisePropagation(sc, body, start, start.Add(duration), step, export)
		prop.Propagate()
		return
	}

	// Frame-driven mode: fixed frame delta, warp factor from the scenario.
	frameDT := 1.0 / 60
	warp := v.GetFloat64("mission.warp")
	if warp < 1 {
		warp = 1
	}
	ctrl := orbital.NewPropagationController(sc, &body, orbital.IdentityScale, cfg, logger)
	ctrl.SetTimeWarp(warp)
	ticks := int(duration.Seconds() / (frameDT * warp))
	for k := 0; k < ticks; k++ {
		ctrl.Tick(frameDT)
	}
	logger.Log("level", "notice", "subsys", "astro", "status", "finished", "mode", ctrl.Mode(), "orbit", ctrl.Elements())
}
