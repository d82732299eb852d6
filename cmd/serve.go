package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sriramreddydwarampudi/sridaw/config"
	"github.com/sriramreddydwarampudi/sridaw/midi"
	"github.com/sriramreddydwarampudi/sridaw/model"
	"github.com/sriramreddydwarampudi/sridaw/pianoroll"
	"github.com/sriramreddydwarampudi/sridaw/playback"
	"github.com/sriramreddydwarampudi/sridaw/score"
	"github.com/sriramreddydwarampudi/sridaw/scorefile"
)

const maxBodyBytes = 1 << 20

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the render API",
	Long:  `Serves an HTTP API that renders score documents to MIDI files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := conf
		if serveAddr != "" {
			c.Addr = serveAddr
		}
		if err := c.EnsureOutDir(); err != nil {
			return err
		}
		log.WithField("addr", c.Addr).Info("Serving")
		return http.ListenAndServe(c.Addr, NewRouter(c))
	},
}

type server struct {
	conf config.Config
}

func NewRouter(conf config.Config) http.Handler {
	srv := &server{conf: conf}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	router.HandleFunc("/render", srv.handleRender).Methods("POST")
	router.HandleFunc("/render/{id}", srv.handleGetRender).Methods("GET")
	router.HandleFunc("/pianoroll", srv.handlePianoRoll).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readStream decodes the request body as a score document. The document
// kind follows the Content-Type header.
func readStream(w http.ResponseWriter, r *http.Request) (*score.Stream, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	doc, err := scorefile.Decode(body, scorefile.KindOf(r.Header.Get("Content-Type")))
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

func (srv *server) encodeOptions() []score.EncodeOption {
	return renderOptions{Strict: srv.conf.Strict}.encodeOptions()
}

func (srv *server) renderPath(id string) string {
	return filepath.Join(srv.conf.OutDir, id+".mid")
}

func (srv *server) handleRender(w http.ResponseWriter, r *http.Request) {
	s, err := readStream(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := s.EncodeMIDI(srv.encodeOptions()...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := uuid.New().String()
	if err := midi.WriteFile(srv.renderPath(id), data); err != nil {
		log.WithError(err).Error("Could not store render")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	tl := playback.New(s)
	log.WithFields(log.Fields{"id": id, "bytes": len(data)}).Info("Stored render")
	writeJSON(w, http.StatusOK, model.RenderResult{
		ID:            id,
		QuarterLength: tl.Beats,
		BPM:           tl.BPM,
		Seconds:       tl.Length().Seconds(),
		Bytes:         len(data),
	})
}

func (srv *server) handleGetRender(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, err := os.ReadFile(srv.renderPath(id.String()))
	if errors.Is(err, os.ErrNotExist) {
		writeError(w, http.StatusNotFound, errors.New("no such render"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+id.String()+".mid\"")
	w.Write(data)
}

func (srv *server) handlePianoRoll(w http.ResponseWriter, r *http.Request) {
	s, err := readStream(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PianoRollResponse{
		Roll: pianoroll.FromStream(s),
		BPM:  playback.New(s).BPM,
	})
}
