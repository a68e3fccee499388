package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidwall/geodetic"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseOutput(t *testing.T, out string) [][3]float64 {
	t.Helper()
	var rows [][3]float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fs := strings.Split(line, ",")
		require.Len(t, fs, 3, line)
		var v [3]float64
		for i, s := range fs {
			f, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err)
			v[i] = f
		}
		rows = append(rows, v)
	}
	return rows
}

func TestConvertGeodetic(t *testing.T) {
	cfg := config{Ellipsoid: geodetic.WGS84, Mode: ModeGeodetic, Degrees: true}
	in := "6378137,0,0\n4201149.774, 168331.675, 4780424.334\n0,0,-6356752.314245179\n"

	var out bytes.Buffer
	n, err := convert(cfg, strings.NewReader(in), &out, discard())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	rows := parseOutput(t, out.String())
	require.Len(t, rows, 3)
	assert.InDelta(t, 0, rows[0][0], 1e-12)
	assert.InDelta(t, 0, rows[0][1], 1e-12)
	assert.InDelta(t, 0, rows[0][2], 1e-8)
	assert.InDelta(t, 48.8582, rows[1][0], 1e-7)
	assert.InDelta(t, 2.2945, rows[1][1], 1e-7)
	assert.InDelta(t, 300, rows[1][2], 1e-3)
	assert.InDelta(t, -90, rows[2][0], 1e-12)
	assert.InDelta(t, 0, rows[2][2], 1e-6)
}

func TestConvertRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		to, back Mode
		in       string
	}{
		{ModeCartesian, ModeGeodetic, "48.8582,2.2945,300\n-33.8568,151.2153,5\n"},
		{ModeUnspherical, ModeSpherical, "6371000,48.8582,2.2945\n42,-33.8568,151.2153\n"},
	} {
		cfg := config{Ellipsoid: geodetic.GRS80, Mode: tc.to, Degrees: true}
		var mid, out bytes.Buffer
		_, err := convert(cfg, strings.NewReader(tc.in), &mid, discard())
		require.NoError(t, err)
		cfg.Mode = tc.back
		_, err = convert(cfg, &mid, &out, discard())
		require.NoError(t, err)

		want := parseOutput(t, tc.in)
		got := parseOutput(t, out.String())
		require.Len(t, got, len(want))
		for i := range want {
			for j := range want[i] {
				assert.InDelta(t, want[i][j], got[i][j], 1e-6, "%s row %d", tc.back, i)
			}
		}
	}
}

func TestConvertErrors(t *testing.T) {
	cfg := config{Ellipsoid: geodetic.WGS84, Mode: ModeGeodetic}

	var out bytes.Buffer
	n, err := convert(cfg, strings.NewReader("1,2,3\n1,x,3\n"), &out, discard())
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "row 2")

	_, err = convert(cfg, strings.NewReader("1,2\n"), &out, discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}

func TestParseConfig(t *testing.T) {
	t.Setenv(envEllipsoid, "")
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, geodetic.WGS84, cfg.Ellipsoid)
	assert.Equal(t, ModeGeodetic, cfg.Mode)
	assert.False(t, cfg.Degrees)

	cfg, err = parseConfig([]string{"-e", "pz-90", "-m", "spherical", "-deg", "-v"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, geodetic.PZ90, cfg.Ellipsoid)
	assert.Equal(t, ModeSpherical, cfg.Mode)
	assert.True(t, cfg.Degrees)
	assert.True(t, cfg.Verbose)

	_, err = parseConfig([]string{"-m", "utm"}, io.Discard)
	assert.ErrorContains(t, err, "invalid mode")

	_, err = parseConfig([]string{"-e", "bessel"}, io.Discard)
	assert.ErrorIs(t, err, geodetic.ErrUnknownEllipsoid)

	t.Setenv(envEllipsoid, "GRS80")
	cfg, err = parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, geodetic.GRS80, cfg.Ellipsoid)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, "geoconv.env")
	require.NoError(t, os.WriteFile(path, []byte(envEllipsoid+"=PZ90\n"), 0o644))
	t.Setenv(envEllipsoid, "")
	require.NoError(t, os.Unsetenv(envEllipsoid))
	require.NoError(t, loadEnv(path))
	assert.Equal(t, "PZ90", os.Getenv(envEllipsoid))

	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, geodetic.PZ90, cfg.Ellipsoid)
}
