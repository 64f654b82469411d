package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	inputCmdConfig
	boxed bool
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from part of a set of data, print it and evaluate it against the rest`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			names, err := config.names()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, validation, err := config.grow(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if config.boxed {
				fmt.Print(t.RenderBoxed(names))
			} else if err = t.Render(os.Stdout, names); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			report := t.Evaluate(validation)
			fmt.Println(report)
			fmt.Printf("Unclassifiable cases: %d\n", report.Unclassifiable)
		},
	}
	config.addFlags(cmd, 0.75)
	cmd.PersistentFlags().BoolVar(&(config.boxed), "boxed", false, "print the tree as boxes instead of an indented outline")
	return cmd
}
