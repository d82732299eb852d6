package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sriramreddydwarampudi/sridaw/chord"
	"github.com/sriramreddydwarampudi/sridaw/midi"
	"github.com/sriramreddydwarampudi/sridaw/scorefile"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid> [out.yaml|out.json]",
	Short: "Converts a MIDI file into a score document",
	Long: `Converts the notes of a MIDI file into a score document. Notes that
start and stop together become chords. Without an output path the YAML
document is printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return importMidi(cmd.OutOrStdout(), args[0], scorefile.YAML)
		}
		return importMidiFile(args[0], args[1])
	},
}

func importDocument(path string, kind scorefile.Kind) ([]byte, error) {
	parsed, err := midi.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := chord.FromSMF(parsed)
	if err != nil {
		return nil, err
	}
	data, err := scorefile.FromStream(s).Encode(kind)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"midi": path, "elements": s.Len()}).Debug("Imported")
	return data, nil
}

func importMidi(w io.Writer, path string, kind scorefile.Kind) error {
	data, err := importDocument(path, kind)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// importMidiFile writes the document only once the whole import succeeded,
// so a bad input never leaves an empty or partial document at out.
func importMidiFile(path, out string) error {
	data, err := importDocument(path, scorefile.KindOf(out))
	if err != nil {
		return err
	}
	return midi.WriteFile(out, data)
}
