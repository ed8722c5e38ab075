package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harmonylab",
	Short: "Music-theory labels for live MIDI notes",
	Long:  `Turns sets of sounding MIDI notes into note names, intervals, scale degrees and Roman-numeral chord labels relative to a key.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
