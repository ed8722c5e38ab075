package cmd

import (
	"fmt"

	"github.com/johnfelipe/HarmonyLab/chord"
	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/midi"
	"github.com/spf13/cobra"
)

var annotateKey string

func init() {
	annotateCmd.Flags().StringVarP(&annotateKey, "key", "k", "", "key signature, e.g. C, f#, Eb")
	rootCmd.AddCommand(annotateCmd)
}

var annotateCmd = &cobra.Command{
	Use:   "annotate [midi file]",
	Short: "Labels the chords in a midi file",
	Long:  `Labels the chords in a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		annotate(args[0])
	},
}

func annotate(path string) {
	cfg := config.MustLoad()
	if annotateKey != "" {
		cfg.Key = annotateKey
	}
	sig, err := key.Named(cfg.Key)
	if err != nil {
		panic("Unknown key: " + cfg.Key)
	}

	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	lastLabel := ""
	for _, moment := range midi.Moments(parsed) {
		m := chord.Find(moment.Notes, sig)
		if m == nil {
			continue
		}
		label := m.Label()
		if label == lastLabel {
			continue
		}
		lastLabel = label
		secs := float64(moment.OffsetMicros) / 1e6
		fmt.Printf("%8.3fs  %-8v %v %v\n", secs, label, m.RootName, m.Quality)
	}
}
