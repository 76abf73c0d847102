package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/waqasbhatti/fits-to-stamps/internal/batch"
	"github.com/waqasbhatti/fits-to-stamps/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	defaults := batch.DefaultOptions()

	fs := flag.NewFlagSet("fits-to-stamps", flag.ContinueOnError)
	fs.Usage = func() { usage(fs) }

	showVersion := fs.Bool("version", false, "print version information and exit")
	trimsec := fs.String("trimsec", strings.Join(defaults.TrimKeys, ","),
		"CSV list of header keys to try for the trim section")
	trimbox := fs.String("trimbox", "",
		"custom [c1:c2,r1:r2] section, overrides the header lookup")
	fitsext := fs.Int("fitsext", defaults.FitsExt,
		"image extension number; -1 auto-detects plain and .fits.fz containers")
	stampsize := fs.Int("stampsize", defaults.StampSize, "stamp size in pixels")
	separatorwidth := fs.Int("separatorwidth", defaults.SeparatorWidth,
		"width of the separator lines between stamps in pixels")
	fitsglob := fs.String("fitsglob", defaults.Glob,
		"file glob that recognizes FITS files in a directory")
	workers := fs.Int("workers", defaults.Workers,
		"number of parallel workers for directory mode")
	loglevel := fs.String("loglevel", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("fits-to-stamps %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one target (FITS file or directory) is required")
		fs.Usage()
		return 2
	}
	target := fs.Arg(0)

	opts := defaults
	opts.TrimKeys = strings.Split(*trimsec, ",")
	opts.TrimBox = *trimbox
	opts.FitsExt = *fitsext
	opts.StampSize = *stampsize
	opts.SeparatorWidth = *separatorwidth
	opts.Glob = *fitsglob
	opts.Workers = *workers

	if opts.StampSize < 1 || opts.SeparatorWidth < 1 {
		fmt.Fprintln(os.Stderr, "stampsize and separatorwidth must both be at least 1")
		return 2
	}

	log := logging.New(*loglevel)

	results, err := batch.Run(target, opts, log)
	if err != nil {
		log.Error("run aborted", "error", err)
		return 1
	}
	if failed := batch.Failed(results); failed > 0 {
		log.Error("some files failed to convert",
			"failed", failed, "total", len(results))
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "fits-to-stamps - convert FITS images to 3x3 stamp mosaics")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: fits-to-stamps [options] <target>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "The target is a single FITS file or a directory of FITS files.")
	fmt.Fprintln(os.Stderr, "Each input produces one PNG written alongside it.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fs.PrintDefaults()
}
