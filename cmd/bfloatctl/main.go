// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bfloatctl is a small command-line demonstrator for the bfloat
// package: each subcommand parses its operands as decimal text (via
// bfloat.BFloat's UnmarshalText, itself routed through math/big.Rat) and
// prints the result of the corresponding BFloat operation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SunsetQuest/BigFloat-sub004"
)

var precisionBits int

func parseOperand(s string) (bfloat.BFloat, error) {
	var x bfloat.BFloat
	if err := x.UnmarshalText([]byte(s)); err != nil {
		return bfloat.BFloat{}, err
	}
	return x, nil
}

func parseOperands(args []string) ([]bfloat.BFloat, error) {
	vals := make([]bfloat.BFloat, len(args))
	for i, a := range args {
		v, err := parseOperand(a)
		if err != nil {
			return nil, fmt.Errorf("operand %d (%q): %w", i, a, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func runBinary(op func(x, y bfloat.BFloat) (bfloat.BFloat, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vals, err := parseOperands(args)
		if err != nil {
			return err
		}
		r, err := op(vals[0], vals[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
		return nil
	}
}

func runUnary(op func(x bfloat.BFloat) (bfloat.BFloat, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vals, err := parseOperands(args)
		if err != nil {
			return err
		}
		r, err := op(vals[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
		return nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bfloatctl",
		Short: "Evaluate arbitrary-precision binary floating-point expressions",
	}
	root.PersistentFlags().IntVar(&precisionBits, "precision", 0, "working precision in bits for operations that need an explicit target (0 = operand-derived for sqrt, 64 for pi)")

	root.AddCommand(
		&cobra.Command{
			Use:   "add x y",
			Short: "Print x + y",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseOperands(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), vals[0].Add(vals[1]).String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "sub x y",
			Short: "Print x - y",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseOperands(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), vals[0].Sub(vals[1]).String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "mul x y",
			Short: "Print x * y",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseOperands(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), vals[0].Mul(vals[1]).String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "div x y",
			Short: "Print x / y",
			Args:  cobra.ExactArgs(2),
			RunE:  runBinary(bfloat.BFloat.Quo),
		},
		&cobra.Command{
			Use:   "sqrt x",
			Short: "Print sqrt(x), to --precision working bits (default: x's own precision)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseOperand(args[0])
				if err != nil {
					return err
				}
				prec := precisionBits
				if prec <= 0 {
					prec = x.Size()
				}
				r, err := x.Sqrt(prec)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "ln x",
			Short: "Print ln(x)",
			Args:  cobra.ExactArgs(1),
			RunE:  runUnary(bfloat.BFloat.Ln),
		},
		&cobra.Command{
			Use:   "exp x",
			Short: "Print e**x",
			Args:  cobra.ExactArgs(1),
			RunE:  runUnary(bfloat.BFloat.Exp),
		},
		&cobra.Command{
			Use:   "pow x n",
			Short: "Print x**n for an integer exponent n",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseOperand(args[0])
				if err != nil {
					return err
				}
				var n int
				if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil {
					return fmt.Errorf("exponent %q is not an integer: %w", args[1], err)
				}
				r, err := x.Pow(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
				return nil
			},
		},
		&cobra.Command{
			Use:   "cmp x y",
			Short: "Print the canonical comparison of x and y (-1, 0 or 1)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				vals, err := parseOperands(args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), vals[0].CompareCanonical(vals[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "pi",
			Short: "Print pi to --precision bits (default 64)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				prec := precisionBits
				if prec <= 0 {
					prec = 64
				}
				p, err := bfloat.Pi(prec)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
				return nil
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
