package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/johnfelipe/HarmonyLab/analysis"
	"github.com/johnfelipe/HarmonyLab/config"
	"github.com/johnfelipe/HarmonyLab/key"
	"github.com/johnfelipe/HarmonyLab/noteset"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Labels notes from a live midi input",
	Long:  `Labels notes from a live midi input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	cfg := config.MustLoad()
	sig, err := key.Named(cfg.Key)
	if err != nil {
		panic("Unknown key: " + cfg.Key)
	}

	set := noteset.New()

	// a rolled chord arrives as a burst of note ons; debounce so each
	// resting state prints once
	debounced := debounce.New(50 * time.Millisecond)
	report := func() {
		notes := set.Sorted()
		if len(notes) == 0 {
			return
		}
		printAnalysis(analysis.Analyze(notes, sig, cfg))
	}
	set.Subscribe(func(cmd noteset.Command, note uint8) {
		debounced(report)
	})

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, note, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &note, &vel):
			set.NoteOn(note)
		case msg.GetNoteEnd(&ch, &note):
			set.NoteOff(note)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	fmt.Printf("listening in %v...\n", sig.ShortName())
	time.Sleep(time.Second * 5000)
	stop()
}
