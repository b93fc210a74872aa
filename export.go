package orbital

import (
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportConfig configures the exporting of a propagation.
type ExportConfig struct {
	Filename  string
	OutputDir string
	AsCSV     bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV || c.Filename == ""
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf ExportConfig, stateDT time.Time) *os.File {
	outputDir := conf.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	filename := fmt.Sprintf("%s/orbital-elements-%s.csv", outputDir, conf.Filename)
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/orbital-elements-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Position in meters, velocity in m/s, angles in degrees.
#   Simulation time start (UTC): %s
time,jd,x,y,z,vx,vy,vz,a,e,i,Omega,omega,nu`, time.Now(), stateDT.UTC()))
	return f
}

// StreamStates streams the states of the provided channel to a CSV file,
// one record per state, until the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan (State)) {
	if conf.IsUseless() {
		for range stateChan {
			// Drain so the producer never blocks.
		}
		return
	}
	var f *os.File
	var prevDT time.Time
	for state := range stateChan {
		if f == nil {
			f = createCSVFile(conf, state.DT)
			defer f.Close()
		}
		R, V := state.Orbit.RV()
		a, e, i, Ω, ω, ν := state.Orbit.Elements()
		record := fmt.Sprintf("\n%s,%.6f,%.3f,%.3f,%.3f,%.6f,%.6f,%.6f,%.3f,%.6f,%.3f,%.3f,%.3f,%.3f",
			state.DT.UTC().Format("2006-01-02 15:04:05"), julian.TimeToJD(state.DT),
			R[0], R[1], R[2], V[0], V[1], V[2],
			a, e, Rad2deg(i), Rad2deg(Ω), Rad2deg(ω), Rad2deg(ν))
		if _, err := f.WriteString(record); err != nil {
			panic(err)
		}
		prevDT = state.DT
	}
	if f != nil {
		f.WriteString(fmt.Sprintf("\n# Simulation time end (UTC): %s\n", prevDT.UTC()))
	}
}
