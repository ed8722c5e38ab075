package cmd

import (
	"fmt"

	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the supported key signatures",
	Long:  `Lists the supported key signatures`,
	Run: func(cmd *cobra.Command, args []string) {
		listKeys()
	},
}

func listKeys() {
	for _, name := range key.Names() {
		sig, err := key.Named(name)
		if err != nil {
			panic("Could not build key " + name + ": " + err.Error())
		}
		var degrees []string
		for _, d := range sig.Frame() {
			degrees = append(degrees, d.Spelling().String())
		}
		fmt.Printf("%-3v %-6v %v\n", sig.ShortName(), sig.Mode(), degrees)
	}
}
