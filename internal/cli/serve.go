package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/jammo/wardrobe/pkg/render/scene"
	"github.com/jammo/wardrobe/pkg/render/sink"
	"github.com/jammo/wardrobe/pkg/wdp"
)

// newServeCmd creates the serve command, which serves a live HTML/SVG
// preview of a project. The file is re-read on every request, so an
// editor running next to the server shows fresh state on reload.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a live HTML preview of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8420", "listen address")
	return cmd
}

func runServe(ctx context.Context, path, addr string) error {
	logger := loggerFromContext(ctx)
	cfg := loadConfig(ctx)

	// Load once up front so a broken file fails fast instead of on the
	// first request.
	if _, err := wdp.Load(path); err != nil {
		printErr(err)
		return err
	}

	sceneOpts := []scene.Option{
		scene.WithSize(defaultCanvasWidth, defaultCanvasHeight),
		scene.WithMargin(defaultMargin),
		scene.WithColors(cfg.Colors),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		p, err := wdp.Load(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, previewHTML, p.Metadata.ProjectName)
	})

	r.Get("/render.svg", func(w http.ResponseWriter, req *http.Request) {
		p, err := wdp.Load(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		opts := sceneOpts
		if sel := req.URL.Query().Get("select"); sel != "" {
			opts = append(opts, scene.WithSelection(sel))
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(sink.RenderSVG(scene.Build(p, opts...)))
	})

	r.Get("/project.json", func(w http.ResponseWriter, req *http.Request) {
		p, err := wdp.Load(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data, err := wdp.Encode(p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	r.Get("/layout.json", func(w http.ResponseWriter, req *http.Request) {
		p, err := wdp.Load(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s := scene.Build(p, sceneOpts...)
		data, err := sink.RenderJSON(p, s, defaultMargin)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Infof("serving %s on http://%s", path, addr)
	printInfo("Preview at %s", StyleHighlight.Render("http://"+addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

const previewHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <style>
    body { margin: 0; background: #eee; font-family: sans-serif; }
    main { display: flex; justify-content: center; padding: 2rem; }
    img { background: white; box-shadow: 0 2px 8px rgba(0,0,0,0.2); max-width: 100%%; }
  </style>
</head>
<body>
  <main><img src="/render.svg" alt="wardrobe layout"></main>
  <script>setInterval(() => {
    document.querySelector('img').src = '/render.svg?t=' + Date.now();
  }, 2000);</script>
</body>
</html>
`
