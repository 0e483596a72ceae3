// Command fftgen generates straight-line FFT/IFFT source code for a
// compile-time-fixed, power-of-two point count. See generator.Generate
// for the engine; this file is only the thin CLI/driver shell around it.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/andewx/fftgen/generator"
	"github.com/andewx/fftgen/internal/diag"
	"github.com/andewx/fftgen/internal/license"
)

const (
	logo    = "fftGen"
	version = "V1"
)

func main() {
	app := buildApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(exitCode(err))
	}
}

func buildApp() *cli.App {
	var verboseCount int

	// The default VersionFlag aliases "-v", which collides with this
	// app's own repeatable --verbose short flag. Rebind it to "-V" to
	// match the original tool's flag.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version and exit",
	}

	return &cli.App{
		Name:                 logo,
		Usage:                "generate unrolled FFT/IFFT source code",
		Version:              version,
		UsageText:            logo + " [option]...",
		HideHelpCommand:      true,
		EnableBashCompletion: false,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "points",
				Aliases: []string{"n"},
				Usage:   "number of data points, must be a non-zero power of two",
			},
			&cli.BoolFlag{
				Name:    "inverse",
				Aliases: []string{"i"},
				Usage:   "generate code to calculate an inverse FFT",
			},
			&cli.BoolFlag{
				Name:    "real-in-opt",
				Aliases: []string{"r"},
				Usage:   "optimize assuming the imaginary input values are all zero",
			},
			&cli.BoolFlag{
				Name:    "real-out-opt",
				Aliases: []string{"o"},
				Usage:   "optimize assuming the result's imaginary values are all zero",
			},
			&cli.BoolFlag{
				Name:    "symm-in-opt",
				Aliases: []string{"m"},
				Usage:   "optimize assuming the input is Hermitian-symmetric about n/2",
			},
			&cli.BoolFlag{
				Name:    "symm-out-opt",
				Aliases: []string{"s"},
				Usage:   "optimize assuming the result is Hermitian-symmetric about n/2",
			},
			&cli.BoolFlag{
				Name:    "license",
				Aliases: []string{"l"},
				Usage:   "write a short GPL 3 license note at the beginning of the output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "increase verbosity, can be specified more than once",
				Count:   &verboseCount,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, &verboseCount)
		},
	}
}

func run(c *cli.Context, verboseCount *int) error {
	if c.NArg() > 0 {
		return usageError("Unknown argument: %s", c.Args().First())
	}
	if !c.IsSet("points") {
		return usageError("No number of points specified")
	}

	n := c.Int("points")
	cfg, err := generator.NewConfig(
		n,
		c.Bool("inverse"),
		c.Bool("real-in-opt"),
		c.Bool("real-out-opt"),
		c.Bool("symm-in-opt"),
		c.Bool("symm-out-opt"),
	)
	if err != nil {
		return usageErrorFrom(err)
	}

	logger := diag.New(os.Stderr, *verboseCount)
	if logger.Enabled(1) {
		logger.Printf(1, "fftgen: n=%d inverse=%t real-in=%t real-out=%t symm-in=%t symm-out=%t",
			cfg.N, cfg.Inverse, cfg.RealIn, cfg.RealOut, cfg.SymmIn, cfg.SymmOut)
	}

	if c.Bool("license") {
		cfg.Header = license.Text
	}

	if err := generator.Generate(os.Stdout, cfg); err != nil {
		return cli.Exit(errors.Wrap(err, "Error writing generated code").Error(), 1)
	}
	return nil
}

// usageError reports a fatal command-line error, matching the original
// tool's diagnostic wording and its convention of a non-zero exit status
// on any argument problem.
func usageError(format string, args ...interface{}) error {
	return cli.Exit(fmt.Sprintf(format, args...), 1)
}

func usageErrorFrom(err error) error {
	return cli.Exit(err.Error(), 1)
}

func errorMessage(err error) string {
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.Error()
	}
	return err.Error()
}

func exitCode(err error) int {
	if ec, ok := err.(cli.ExitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}
