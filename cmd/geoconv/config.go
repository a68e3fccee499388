package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/tidwall/geodetic"
)

const envEllipsoid = "GEOCONV_ELLIPSOID"

// Mode selects the conversion applied to each row.
type Mode string

const (
	ModeGeodetic    Mode = "geodetic"    // x,y,z -> lat,lon,h
	ModeCartesian   Mode = "cartesian"   // lat,lon,h -> x,y,z
	ModeSpherical   Mode = "spherical"   // x,y,z -> r,lat,lon
	ModeUnspherical Mode = "unspherical" // r,lat,lon -> x,y,z
)

func (m Mode) valid() bool {
	switch m {
	case ModeGeodetic, ModeCartesian, ModeSpherical, ModeUnspherical:
		return true
	}
	return false
}

type config struct {
	Ellipsoid geodetic.Ellipsoid
	Mode      Mode
	Degrees   bool
	Verbose   bool
}

// loadEnv reads an optional .env file; a missing file is fine.
func loadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("geoconv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defEllipsoid := os.Getenv(envEllipsoid)
	if defEllipsoid == "" {
		defEllipsoid = geodetic.WGS84.Name()
	}
	name := fs.String("e", defEllipsoid, "reference ellipsoid (GRS80, WGS84, PZ90)")
	mode := fs.String("m", string(ModeGeodetic), "conversion: geodetic, cartesian, spherical, unspherical")
	deg := fs.Bool("deg", false, "angles in degrees")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	var cfg config
	e, err := geodetic.Lookup(*name)
	if err != nil {
		return config{}, err
	}
	cfg.Ellipsoid = e
	cfg.Mode = Mode(*mode)
	if !cfg.Mode.valid() {
		return config{}, fmt.Errorf("invalid mode %q", *mode)
	}
	cfg.Degrees = *deg
	cfg.Verbose = *verbose
	return cfg, nil
}
