package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sriramreddydwarampudi/sridaw/config"
	"github.com/sriramreddydwarampudi/sridaw/midi"
	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/sriramreddydwarampudi/sridaw/scorefile"
	"github.com/sriramreddydwarampudi/sridaw/util"
)

var (
	renderStrict     bool
	renderBestEffort bool
)

func init() {
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail on out-of-range values instead of clamping them")
	renderCmd.Flags().BoolVar(&renderBestEffort, "best-effort", false, "write a one-note placeholder file when encoding fails")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <score|dir> [out.mid]",
	Short: "Renders score documents to MIDI files",
	Long: `Renders a score document (YAML or JSON) to a MIDI file. When given a
directory, every score document under it is rendered into the out dir.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOptions{
			Strict:     conf.Strict || renderStrict,
			BestEffort: conf.BestEffort || renderBestEffort,
		}
		var out string
		if len(args) == 2 {
			out = args[1]
		}
		_, err := render(conf, args[0], out, opts)
		return err
	},
}

type renderOptions struct {
	Strict     bool
	BestEffort bool
}

func (o renderOptions) encodeOptions() []score.EncodeOption {
	if o.Strict {
		return []score.EncodeOption{score.Strict()}
	}
	return nil
}

func exportName(now time.Time) string {
	return fmt.Sprintf("sridaw_export_%d.mid", now.Unix())
}

// render handles a single document or a directory of them and returns the
// files it wrote.
func render(conf config.Config, in, out string, opts renderOptions) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if out == "" {
			if err := conf.EnsureOutDir(); err != nil {
				return nil, err
			}
			out = filepath.Join(conf.OutDir, exportName(time.Now()))
		}
		if err := renderFile(in, out, opts); err != nil {
			return nil, err
		}
		return []string{out}, nil
	}

	if out != "" {
		return nil, errors.New("an output path cannot be combined with a directory of scores")
	}
	paths, err := util.GatherAllScorePaths(in, 0)
	if err != nil {
		return nil, err
	}
	if err := conf.EnsureOutDir(); err != nil {
		return nil, err
	}

	var written []string
	for i, path := range paths {
		log.Infof("Rendering %v of %v scores", i+1, len(paths))
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		dest := filepath.Join(conf.OutDir, base+".mid")
		if err := renderFile(path, dest, opts); err != nil {
			log.WithError(err).WithField("score", path).Error("Skipping score")
			continue
		}
		written = append(written, dest)
	}
	return written, nil
}

func renderFile(in, out string, opts renderOptions) error {
	s, err := scorefile.Load(in)
	if err != nil {
		return err
	}

	err = s.Write(score.FormatMIDI, out, opts.encodeOptions()...)
	if err != nil {
		if !opts.BestEffort {
			return err
		}
		log.WithError(err).WithField("out", out).Warn("Encoding failed, writing placeholder file")
		return midi.WriteFile(out, midi.Fallback())
	}

	log.WithFields(log.Fields{
		"score":    in,
		"out":      out,
		"elements": s.Len(),
		"quarters": s.Duration().QuarterLength,
	}).Info("Rendered")
	return nil
}
