package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/napalu/goargs"
)

func main() {
	args, err := goargs.NewRegistryWith(
		goargs.WithUsage("goargs-demo [options] [-- files...]"),
		goargs.WithOption(func(r *goargs.Registry) error {
			return goargs.AddOption[float64](r, "d", "double", "This is a double.")
		}),
		goargs.WithOption(func(r *goargs.Registry) error {
			return goargs.AddOption[bool](r, "gz", "gzip", "This is a boolean toggle.")
		}),
		goargs.WithOption(func(r *goargs.Registry) error {
			return goargs.AddOption[string](r, "s", "string", "This is a string.")
		}),
		goargs.WithOption(func(r *goargs.Registry) error {
			return goargs.AddOption[[]int](r, "l", "list", "This is a list of integers.")
		}),
		goargs.WithOption(func(r *goargs.Registry) error {
			return goargs.AddOptionWithDefault(r, "h", "help", "Show this help.", false)
		}),
	)
	if err != nil {
		fail(err)
	}

	if err := args.Parse(os.Args); err != nil {
		fail(err)
	}
	for _, w := range args.Warnings() {
		fmt.Fprintln(os.Stderr, color.YellowString("Warning: %s", w))
	}

	if goargs.MustValue[bool](args, "help") {
		args.PrintHelp()
		return
	}

	val, err := goargs.Value[float64](args, "double")
	if err != nil {
		fail(err)
	}
	fmt.Printf("Value of the double: %v\n", val)

	gzip, err := goargs.Value[bool](args, "gzip")
	if err != nil {
		fail(err)
	}
	fmt.Printf("Toggle is: %t\n", gzip)

	str, err := goargs.Value[string](args, "string")
	if err != nil {
		fail(err)
	}
	fmt.Printf("String reads: %s\n", str)

	ints, err := goargs.Value[[]int](args, "list")
	if err != nil {
		fail(err)
	}
	for i, n := range ints {
		fmt.Printf("Integer in the list at pos %d is: %d\n", i, n)
	}

	for i := 0; i < args.PositionalCount(); i++ {
		p, _ := args.Positional(i)
		fmt.Printf("Positional %d: %s\n", i, p)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	os.Exit(1)
}
