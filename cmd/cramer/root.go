package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cramer/cramer"
	"github.com/katalvlaran/cramer/loader"
	"github.com/katalvlaran/cramer/report"
)

// errReported marks failures already rendered to the user.
var errReported = errors.New("cramer: failure reported")

type flags struct {
	allowSingular bool
	parallel      bool
	precision     int
	verify        bool
	quiet         bool
	verbose       bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "cramer [file]",
		Short: "Solve an N x N linear system by Cramer's Rule",
		Long: "cramer reads an N x (N+1) comma-separated matrix (coefficients followed by\n" +
			"the right-hand side, one equation per line) and prints var1..varN.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

			path, err := filename(args, in, out)
			if err != nil {
				return err
			}

			return run(path, f, out, log)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fl := cmd.Flags()
	fl.BoolVar(&f.allowSingular, "allow-singular", false, "print Inf/NaN instead of failing when the coefficient determinant is zero")
	fl.BoolVar(&f.parallel, "parallel", false, "evaluate numerator determinants concurrently")
	fl.IntVar(&f.precision, "precision", report.DefaultPrecision, "significant digits in the output (-1 = shortest exact)")
	fl.BoolVar(&f.verify, "verify", false, "print the largest residual |A*x - b|")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "do not echo the input matrix")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

// filename returns the single positional argument or prompts for one.
func filename(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	fmt.Fprint(out, "Enter the file name containing the N x (N+1) matrix representing an N x N system of equations: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read file name: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("no file name given")
	}

	return name, nil
}

func run(path string, f flags, out io.Writer, log *slog.Logger) error {
	sys, err := loader.ReadFile(path)
	if err != nil {
		log.Error("load system", "path", path, "err", err)
		return err
	}
	log.Debug("loaded system", "path", path, "rows", sys.Rows(), "cols", sys.Cols())

	popts := []report.Option{report.WithPrecision(f.precision)}
	if !f.quiet {
		if err = report.WriteMatrix(out, sys, popts...); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if err = cramer.ValidateSystem(sys); err != nil {
		log.Debug("invalid system", "err", err)
		_ = report.WriteError(out, err)
		return errReported
	}

	var sopts []cramer.Option
	if f.allowSingular {
		sopts = append(sopts, cramer.WithAllowSingular())
	}
	if f.parallel {
		sopts = append(sopts, cramer.WithParallel())
	}
	x, err := cramer.Solve(sys, sopts...)
	if err != nil {
		log.Debug("solve failed", "err", err)
		_ = report.WriteError(out, err)
		return errReported
	}
	log.Debug("solved", "unknowns", len(x))

	fmt.Fprintln(out, "RESULT:")
	if err = report.WriteSolution(out, x, popts...); err != nil {
		return err
	}

	if f.verify {
		r, err := cramer.Residual(sys, x)
		if err != nil {
			return err
		}
		return report.WriteResidual(out, r, popts...)
	}

	return nil
}
