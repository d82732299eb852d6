package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "quiet period before re-rendering (default from config)")
	watchCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail on out-of-range values instead of clamping them")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <score> <out.mid>",
	Short: "Re-renders a score whenever it changes",
	Long:  `Re-renders a score whenever it changes`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := conf.WatchInterval
		if watchInterval > 0 {
			interval = watchInterval
		}
		opts := renderOptions{Strict: conf.Strict || renderStrict, BestEffort: conf.BestEffort}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		in, out := args[0], args[1]
		log.WithFields(log.Fields{"score": in, "out": out}).Info("Watching")
		return watch(ctx, in, interval/4, interval, func() {
			if err := renderFile(in, out, opts); err != nil {
				log.WithError(err).Error("Render failed")
			}
		})
	},
}

// watch calls fn once, then polls path every poll and calls fn again once
// the file has stopped changing for delay. It returns when ctx is done; a
// call still pending then is dropped, and one in progress is waited for.
func watch(ctx context.Context, path string, poll, delay time.Duration, fn func()) error {
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}
	debounced := debounce.New(delay)

	var mu sync.Mutex
	stopped := false
	run := func() {
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			fn()
		}
	}
	defer func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod, lastSize := info.ModTime(), info.Size()
	run()

	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				log.WithError(err).Warn("Could not stat score")
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			log.WithField("score", path).Debug("Score changed")
			debounced(run)
		}
	}
}
