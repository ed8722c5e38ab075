package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfelipe/HarmonyLab/analysis"
	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/model"
	"github.com/johnfelipe/HarmonyLab/theory"
	"github.com/spf13/cobra"
)

var analyzeKey string
var analyzeModes string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKey, "key", "k", "", "key signature, e.g. C, f#, Eb")
	analyzeCmd.Flags().StringVarP(&analyzeModes, "modes", "m", "", "comma-separated display modes")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [note numbers]",
	Short: "Labels a set of note numbers",
	Long:  `Labels a set of note numbers`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 note number...")
		}
		var notes []theory.Note
		for _, arg := range args {
			num, err := strconv.Atoi(arg)
			if err != nil || num < 0 || num > 127 {
				panic("Not a note number in [0,127]: " + arg)
			}
			notes = append(notes, theory.Note(num))
		}
		analyze(notes)
	},
}

func analyze(notes []theory.Note) {
	cfg := config.MustLoad()
	if analyzeKey != "" {
		cfg.Key = analyzeKey
	}
	if analyzeModes != "" {
		modes, err := config.ParseModes(strings.Split(analyzeModes, ","))
		if err != nil {
			panic("Bad --modes: " + err.Error())
		}
		cfg.Modes = modes
	}

	sig, err := key.Named(cfg.Key)
	if err != nil {
		panic("Unknown key: " + cfg.Key)
	}

	printAnalysis(analysis.Analyze(notes, sig, cfg))
}

func printAnalysis(a model.Analysis) {
	fmt.Printf("key: %v\n", a.Key)
	for _, label := range a.Notes {
		line := fmt.Sprintf("  %3d", label.Note)
		if label.Name != "" {
			line += "  " + label.Name
		}
		if label.Helmholtz != "" {
			line += "  " + label.Helmholtz
		}
		if label.Degree != "" {
			line += "  " + label.Degree
		}
		if label.Solfege != "" {
			line += "  " + label.Solfege
		}
		fmt.Println(line)
	}
	if a.Interval != "" {
		fmt.Printf("interval: %v\n", a.Interval)
	}
	if a.Chord != nil {
		fmt.Printf("chord: %v%v (%v %v)\n", a.Chord.Numeral, a.Chord.Figure, a.Chord.Root, a.Chord.Quality)
	}
}
