package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterXYZ = `3
water
O   0.000000   0.117300   0.000000
H   0.757200  -0.469200   0.000000
H  -0.757200  -0.469200   0.000000
`

// Same water, hydrogens first.
const waterReorderedXYZ = `H  -0.757200  -0.469200   0.000000
H   0.757200  -0.469200   0.000000
O   0.000000   0.117300   0.000000
`

func writeFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xyz")
	b := filepath.Join(dir, "b.xyz")
	require.NoError(t, os.WriteFile(a, []byte(waterXYZ), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(waterReorderedXYZ), 0o644))
	return a, b
}

func TestRun_PrintsMapping(t *testing.T) {
	a, b := writeFiles(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{a, b}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0 -> 2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "matched 1 of 3/3 atoms in 2 rounds"), lines[1])
}

func TestRun_CacheAndPNG(t *testing.T) {
	a, b := writeFiles(t)
	dir := t.TempDir()
	png := filepath.Join(dir, "map.png")
	args := []string{"-cache", filepath.Join(dir, "db"), "-png", png, "-primes", "-workers", "2", a, b}

	var first, second bytes.Buffer
	require.NoError(t, run(args, &first))
	require.NoError(t, run(args, &second))
	assert.Equal(t, first.String(), second.String(), "second run is served from the cache")

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_Errors(t *testing.T) {
	a, _ := writeFiles(t)
	var out bytes.Buffer

	assert.True(t, errors.Is(run([]string{a}, &out), errUsage))
	assert.Error(t, run([]string{a, filepath.Join(t.TempDir(), "missing.xyz")}, &out))
	assert.Error(t, run([]string{"-workers", "-1", a, a}, &out))
	assert.Error(t, run([]string{"-no-such-flag", a, a}, &out))
}

func TestConfig_Variant(t *testing.T) {
	base := config{workers: 1}
	more := config{workers: 8}
	assert.Equal(t, base.variant(), more.variant(), "workers do not change results")
	assert.NotEqual(t, base.variant(), config{primes: true}.variant())
	assert.NotEqual(t, base.variant(), config{exhaustive: true}.variant())
}
