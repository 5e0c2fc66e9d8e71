package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/oisee/fixedint/internal/batch"
	"github.com/oisee/fixedint/pkg/fixedint"
	"github.com/oisee/fixedint/pkg/result"
	"github.com/spf13/cobra"
)

func main() {
	defer glog.Flush()

	rootCmd := &cobra.Command{
		Use:   "fixeddemo",
		Short: "Fixed-width multi-precision integer toolkit (U128/U256/U512, I128/I256/I512)",
	}

	var width int
	var signed bool
	var base int
	var showBase bool
	var showPos bool

	// eval command: evaluate one operation directly from the command line.
	evalCmd := &cobra.Command{
		Use:   "eval <op> <args...>",
		Short: "Evaluate a single operation (add, sub, mul, div, mod, gcd, lcm, and, or, xor, not, neg, lsh, rsh, cmp, parse)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign := "u"
			if signed {
				sign = "i"
			}
			expr := fmt.Sprintf("%d %s %s", width, sign, strings.Join(args, " "))
			glog.V(1).Infof("eval: %s", expr)

			rec := batch.Evaluate(batch.Task{Line: 1, Expr: expr})
			if rec.Err != "" {
				return fmt.Errorf("%s", rec.Err)
			}

			out := rec.Output
			if base != 10 || showBase || showPos {
				reformatted, err := reformat(width, signed, out, base, showBase, showPos)
				if err != nil {
					return err
				}
				out = reformatted
			}
			fmt.Println(out)
			return nil
		},
	}
	evalCmd.Flags().IntVar(&width, "width", 256, "Integer width in bits: 128, 256, or 512")
	evalCmd.Flags().BoolVar(&signed, "signed", false, "Treat operands as two's-complement signed integers")
	evalCmd.Flags().IntVar(&base, "base", 10, "Output base: 8, 10, or 16")
	evalCmd.Flags().BoolVar(&showBase, "show-base", false, "Prefix hex/octal output with 0x/0")
	evalCmd.Flags().BoolVar(&showPos, "show-pos", false, "Prefix non-negative output with +")

	// batch command: evaluate many operations concurrently from a file.
	var numWorkers int
	var verbose bool
	var output string
	var checkpoint string

	batchCmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Evaluate a file of '<width> <u|i> <op> <args...>' lines concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := readTasks(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Evaluating %d expressions across %d workers\n", len(tasks), effectiveWorkers(numWorkers))

			wp := batch.NewWorkerPool(numWorkers)
			wp.Run(tasks, verbose)

			recs := wp.Results.Records()
			fmt.Printf("\n%d evaluated, %d failed\n", wp.Results.Len(), wp.Results.Failed())
			for _, r := range recs {
				if r.Err != "" {
					fmt.Printf("  [%d] ERROR %s: %s\n", r.Line, r.Input, r.Err)
				} else {
					fmt.Printf("  [%d] %s = %s\n", r.Line, r.Input, r.Output)
				}
			}

			if checkpoint != "" {
				ckpt := &result.Checkpoint{Records: recs, CompletedLines: len(recs)}
				if err := result.SaveCheckpoint(checkpoint, ckpt); err != nil {
					return fmt.Errorf("writing checkpoint: %w", err)
				}
				fmt.Printf("Checkpoint written to %s\n", checkpoint)
			}

			if output != "" {
				return writeRecordsCSV(output, recs)
			}
			return nil
		},
	}
	batchCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of concurrent workers (0 = NumCPU)")
	batchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each result as it completes")
	batchCmd.Flags().StringVar(&output, "output", "", "Write results as CSV to this path")
	batchCmd.Flags().StringVar(&checkpoint, "checkpoint", "", "Write a checkpoint of the finished run to this path")

	// resume command: replay a checkpoint's summary.
	resumeCmd := &cobra.Command{
		Use:   "resume <checkpoint>",
		Short: "Print the records saved in a batch checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ckpt, err := result.LoadCheckpoint(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%d lines completed\n", ckpt.CompletedLines)
			for _, r := range ckpt.Records {
				if r.Err != "" {
					fmt.Printf("  [%d] ERROR %s: %s\n", r.Line, r.Input, r.Err)
				} else {
					fmt.Printf("  [%d] %s = %s\n", r.Line, r.Input, r.Output)
				}
			}
			return nil
		},
	}

	// limits command: print the numeric_limits-style bounds for a width.
	limitsCmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the representable range for --width/--signed",
		RunE: func(cmd *cobra.Command, args []string) error {
			lim := fixedint.LimitsFor(uint(width), signed)
			fmt.Printf("bits=%d signed=%t min=%s max=%s\n", lim.Bits, lim.Signed, lim.MinText, lim.MaxText)
			return nil
		},
	}
	limitsCmd.Flags().IntVar(&width, "width", 256, "Integer width in bits: 128, 256, or 512")
	limitsCmd.Flags().BoolVar(&signed, "signed", false, "Report the signed range instead of unsigned")

	rootCmd.AddCommand(evalCmd, batchCmd, resumeCmd, limitsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func effectiveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return batch.NewWorkerPool(0).NumWorkers
}

// readTasks loads non-blank, non-comment lines from path as batch tasks.
func readTasks(path string) ([]batch.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tasks []batch.Task
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tasks = append(tasks, batch.Task{Line: lineNo, Expr: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func writeRecordsCSV(path string, recs []result.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintln(w, "line,input,output,error")
	for _, r := range recs {
		fmt.Fprintf(w, "%d,%q,%q,%q\n", r.Line, r.Input, r.Output, r.Err)
	}
	return nil
}

// reformat re-parses a decimal result string and renders it in the
// requested base/flags, so `eval` can honor --base/--show-base/--show-pos
// without every operation needing its own formatting branch.
func reformat(width int, signed bool, decimal string, base int, showBase, showPos bool) (string, error) {
	flags := fixedint.FormatFlags(0)
	if showBase {
		flags |= fixedint.ShowBase
	}
	if showPos {
		flags |= fixedint.ShowPos
	}

	switch width {
	case 128:
		if signed {
			v, err := new(fixedint.I128).Parse(decimal)
			if err != nil {
				return "", err
			}
			return v.Format(base, flags), nil
		}
		v, err := new(fixedint.U128).Parse(decimal)
		if err != nil {
			return "", err
		}
		return v.Format(base, flags), nil
	case 256:
		if signed {
			v, err := new(fixedint.I256).Parse(decimal)
			if err != nil {
				return "", err
			}
			return v.Format(base, flags), nil
		}
		v, err := new(fixedint.U256).Parse(decimal)
		if err != nil {
			return "", err
		}
		return v.Format(base, flags), nil
	case 512:
		if signed {
			v, err := new(fixedint.I512).Parse(decimal)
			if err != nil {
				return "", err
			}
			return v.Format(base, flags), nil
		}
		v, err := new(fixedint.U512).Parse(decimal)
		if err != nil {
			return "", err
		}
		return v.Format(base, flags), nil
	default:
		return "", fmt.Errorf("unsupported width %d", width)
	}
}
