// Command geoconv converts CSV rows of coordinates read from stdin and writes
// the converted rows to stdout.
//
//	echo "6378137,0,0" | geoconv -m geodetic -deg
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/tidwall/geodetic"
)

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("starting", "ellipsoid", cfg.Ellipsoid.String(), "mode", cfg.Mode, "degrees", cfg.Degrees)

	n, err := convert(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("conversion failed", "rows", n, "error", err)
		os.Exit(1)
	}
	logger.Debug("done", "rows", n)
}

// convert streams rows from r to w and returns the number of rows written.
func convert(cfg config, r io.Reader, w io.Writer, logger *slog.Logger) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cw := csv.NewWriter(w)

	var n int
	for {
		rs, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("read: %w", err)
		}
		in, err := parseRow(rs)
		if err != nil {
			return n, fmt.Errorf("row %d: %w", n+1, err)
		}
		out := convertRow(cfg, in)
		logger.Debug("converted", "row", n+1, "in", in, "out", out)
		if err := cw.Write(formatRow(out)); err != nil {
			return n, fmt.Errorf("write: %w", err)
		}
		n++
	}
	cw.Flush()
	return n, cw.Error()
}

func parseRow(rs []string) ([3]float64, error) {
	var v [3]float64
	for i, s := range rs {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func formatRow(v [3]float64) []string {
	rs := make([]string, len(v))
	for i := range v {
		rs[i] = strconv.FormatFloat(v[i], 'f', -1, 64)
	}
	return rs
}

func convertRow(cfg config, in [3]float64) [3]float64 {
	e := cfg.Ellipsoid
	toRad, fromRad := 1.0, 1.0
	if cfg.Degrees {
		toRad, fromRad = geodetic.Degree, geodetic.Radian
	}

	var out [3]float64
	switch cfg.Mode {
	case ModeGeodetic:
		g := e.ToGeodetic(geodetic.CartesianPoint{X: in[0], Y: in[1], Z: in[2]})
		out = [3]float64{g.Lat * fromRad, g.Lon * fromRad, g.Height}
	case ModeCartesian:
		c := e.ToCartesian(geodetic.GeodeticPoint{Lat: in[0] * toRad, Lon: in[1] * toRad, Height: in[2]})
		out = [3]float64{c.X, c.Y, c.Z}
	case ModeSpherical:
		s := geodetic.CartesianPoint{X: in[0], Y: in[1], Z: in[2]}.Spherical()
		out = [3]float64{s.R, s.Lat * fromRad, s.Lon * fromRad}
	case ModeUnspherical:
		c := geodetic.SphericalPoint{R: in[0], Lat: in[1] * toRad, Lon: in[2] * toRad}.Cartesian()
		out = [3]float64{c.X, c.Y, c.Z}
	}
	return out
}
