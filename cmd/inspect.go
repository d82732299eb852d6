package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/sriramreddydwarampudi/sridaw/midi"
	"github.com/sriramreddydwarampudi/sridaw/score"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the note events of a MIDI file",
	Long:  `Prints the note events of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	s, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "tracks: %v\n", len(s.Tracks))
	if ticks, ok := s.TimeFormat.(smf.MetricTicks); ok {
		fmt.Fprintf(w, "ticks per quarter: %v\n", uint16(ticks))
	}

	for i, track := range s.Tracks {
		fmt.Fprintf(w, "track %v: %v events\n", i, len(track))
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				fmt.Fprintf(w, "%8d note_on  %-4s (%3d) vel %3d\n", absTicks, score.MIDIName(int(key)), key, velocity)
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				fmt.Fprintf(w, "%8d note_off %-4s (%3d)\n", absTicks, score.MIDIName(int(key)), key)
			}
		}
	}
	return nil
}
