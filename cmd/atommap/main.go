// Command atommap maps the atoms of two XYZ files onto each other.
//
//	atommap [flags] a.xyz b.xyz
//
// It prints one "i -> j" line per mapped atom pair, sorted by i, followed by a
// summary line. Symmetric atoms stay unmapped. With -png the two molecules are
// drawn side by side with matched atoms labelled in red.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/atommap/cache"
	"github.com/katalvlaran/atommap/clca"
	"github.com/katalvlaran/atommap/molecule"
	"github.com/katalvlaran/atommap/render"
	"github.com/katalvlaran/atommap/xyz"
)

var errUsage = errors.New("usage: atommap [flags] a.xyz b.xyz")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		klog.Error(err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// config holds the parsed command line.
type config struct {
	pngPath    string
	cacheDir   string
	workers    int
	maxRounds  int
	primes     bool
	exhaustive bool
	tolerance  float64
}

// variant names the settings that change a result, for cache keys.
func (c config) variant() string {
	return fmt.Sprintf("primes=%t exhaustive=%t max=%d", c.primes, c.exhaustive, c.maxRounds)
}

func (c config) options() []clca.Option {
	opts := []clca.Option{
		clca.WithWorkers(c.workers),
		clca.WithMaxRounds(c.maxRounds),
	}
	if c.primes {
		opts = append(opts, clca.WithColorSource(func() clca.ColorSource { return clca.NewPrimeSource() }))
	}
	if c.exhaustive {
		opts = append(opts, clca.WithExhaustiveRefinement())
	}
	return opts
}

func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("atommap", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")

	var cfg config
	fset.StringVar(&cfg.pngPath, "png", "", "write a two-panel PNG of the mapping to `file`")
	fset.StringVar(&cfg.cacheDir, "cache", "", "cache results in the badger store at `dir`")
	fset.IntVar(&cfg.workers, "workers", 1, "goroutines extending labels per round")
	fset.IntVar(&cfg.maxRounds, "max-rounds", 0, "stop after `n` rounds (0: no cap)")
	fset.BoolVar(&cfg.primes, "primes", false, "issue prime colors instead of 2, 3, 4, ...")
	fset.BoolVar(&cfg.exhaustive, "exhaustive", false, "keep refining while classes still split")
	fset.Float64Var(&cfg.tolerance, "tolerance", molecule.DefaultBondOptions().Tolerance, "bond length tolerance factor")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 2 {
		return errUsage
	}

	var mols [2]*molecule.Molecule
	for i, path := range fset.Args() {
		m, err := xyz.ReadFile(path, molecule.WithTolerance(cfg.tolerance))
		if err != nil {
			return err
		}
		klog.V(1).Infof("%s: %d atoms, %d bonds, %d fragments", path, m.Len(), m.BondCount(), len(m.Components()))
		mols[i] = m
	}

	res, err := match(mols[0], mols[1], cfg)
	if err != nil {
		return err
	}

	for _, p := range res.Pairs {
		fmt.Fprintf(out, "%d -> %d\n", p.A, p.B)
	}
	fmt.Fprintf(out, "matched %d of %d/%d atoms in %d rounds (run %s)\n",
		res.Matched(), mols[0].Len(), mols[1].Len(), res.Rounds, res.RunID)

	if cfg.pngPath != "" {
		img, err := render.Render(mols[0], mols[1], res, render.DefaultOptions())
		if err != nil {
			return err
		}
		if err := render.SavePNG(cfg.pngPath, img); err != nil {
			return err
		}
		klog.V(1).Infof("wrote %s", cfg.pngPath)
	}
	return nil
}

// match runs clca directly or through the result cache when one is configured.
func match(a, b *molecule.Molecule, cfg config) (*clca.Result, error) {
	if cfg.cacheDir == "" {
		return clca.Match(a, b, cfg.options()...)
	}

	store, err := cache.Open(cfg.cacheDir)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	res, hit, err := store.Match(a, b, cfg.variant(), cfg.options()...)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("cache hit: %t", hit)
	return res, nil
}
