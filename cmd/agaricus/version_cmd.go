package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in agaricus' version
	VersionMajor = 0
	// VersionMinor is the minor number in agaricus' version
	VersionMinor = 1
	// VersionPatch is the patch number in agaricus' version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of agaricus",
		Long:  `All software has versions. This is agaricus'`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("agaricus v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
