package cli

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/config"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
	"svw.info/sudoku-solver/web"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		log.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func serveCmd() *cobra.Command {
	var cfgPath string
	var addr string
	var dataDir string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the embedded web UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("data") {
				cfg.DataDir = dataDir
			}
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: parseLevel(cfg.LogLevel),
				}))
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return err
			}

			// Wire providers → use cases → HTTP adapter
			s := solver.NewBacktrackingSolver()
			uc := usecase.NewService(
				s,
				generator.NewUniqueGenerator(s),
				validator.New(),
				hint.NewSingles(),
				storage.NewFS(cfg.DataDir),
			)
			h := httpadapter.New(uc)

			tmpl := web.Templates()

			mux := http.NewServeMux()
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
					http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
				}
			})
			h.Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", cfg.Addr, "data", cfg.DataDir)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML config file (optional)")
	c.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	c.Flags().StringVar(&dataDir, "data", "./data", "puzzle save directory")
	return c
}
