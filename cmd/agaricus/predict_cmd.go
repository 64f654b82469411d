package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/agaricus/tree"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	inputCmdConfig
	sample []string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{inputCmdConfig: inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of a case",
		Long:  `Grow a tree from a set of data and use it to classify a case given as its attribute values`,
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
			t, _, err := config.grow(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			fmt.Println(config.predict(t, names))
		},
	}
	// nothing is evaluated, so the whole input grows the tree
	config.addFlags(cmd, 1)
	cmd.PersistentFlags().StringSliceVar(&(config.sample), "case", nil, "comma separated attribute values of the case to classify, in column order without the label (required)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if len(pcc.sample) == 0 {
		return fmt.Errorf("required case flag was not set")
	}
	return pcc.inputCmdConfig.Validate()
}

func (pcc *predictCmdConfig) predict(t *tree.Tree, names *tree.DisplayNames) string {
	class, ok := t.Classify(pcc.sample)
	if !ok {
		return tree.Unclassifiable
	}
	if names != nil {
		if n, ok := names.Classes[class]; ok && n.Label != "" {
			return n.Label
		}
	}
	return class
}
