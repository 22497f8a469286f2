package config

import (
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.1.0"

var (
	app = kingpin.New("eotc", "Catch the beat judgement and animation simulator")

	Beatmap  = app.Arg("beatmap", "Beatmap (.osu) to play").Required().ExistingFile()
	Rate     = app.Flag("rate", "Playback rate").Default("1.0").Short('r').Float64()
	Tick     = app.Flag("tick", "Simulation step").Default("1ms").Short('t').Duration()
	Driver   = app.Flag("driver", "Who moves the catcher").Default("autoplay").Short('D').Enum("autoplay", "idle", "random")
	Seed     = app.Flag("seed", "Seed for the random driver").Default("1").Int64()
	Skin     = app.Flag("skin", "Skin file with combo colours").Short('s').ExistingFile()
	Watch    = app.Flag("watch", "Reload the skin when it changes").Bool()
	Realtime = app.Flag("realtime", "Pace the simulation to the wall clock").Bool()
	Database = app.Flag("db", "Score database").Default("./scores.db").String()
	NoSave   = app.Flag("no-save", "Do not record this run").Bool()
	Verbose  = app.Flag("verbose", "Print every animation op").Short('v').Bool()
)

func init() {
	app.Version(Version)
	app.HelpFlag.Short('h')
}

// Parse fills the package flags from args, without the program name.
func Parse(args []string) error {
	_, err := app.Parse(args)
	if nil != err {
		return err
	}
	if *Rate <= 0 {
		*Rate = 1
	}
	if *Tick <= 0 {
		*Tick = time.Millisecond
	}
	return nil
}

// Usage prints the help text and the error that caused it.
func Usage(err error) {
	app.FatalUsage("%v", err)
}
