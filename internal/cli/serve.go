package cli

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	seoio "github.com/matzehuels/seohelper/pkg/io"
	"github.com/matzehuels/seohelper/pkg/observability"
	"github.com/matzehuels/seohelper/pkg/seo"
)

const shutdownTimeout = 5 * time.Second

// previewPage wraps the rendered head in a page that also shows the markup.
var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
{{.Head}}
</head>
<body>
<h1>{{.Title}}</h1>
<pre>{{.Source}}</pre>
</body>
</html>
`))

// serveCommand creates the serve command, which previews the head over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [config]",
		Short: "Serve a live preview of the SEO head",
		Long: `Serve a live preview of the SEO head.

Endpoints:
  GET /           HTML page with the rendered head
  GET /head       the head fragment (text/html)
  GET /tags.json  the JSON snapshot
  GET /healthz    liveness probe

The query parameters title, site_name, separator, description, keywords,
url and image override the configuration for a single request.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx, input)
			if err != nil {
				return err
			}
			// fail fast on an invalid card instead of on every request
			if _, err := seo.New(cfg); err != nil {
				return err
			}
			return runServe(ctx, addr, cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", defaultAddr, "listen address")

	return cmd
}

func runServe(ctx context.Context, addr string, cfg *config.Config) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	printKeyValue("Preview", StyleLink.Render("http://"+addr+"/"))
	printKeyValue("Snapshot", StyleLink.Render("http://"+addr+"/tags.json"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newRouter builds the preview handler. Every request gets a fresh helper
// built from cfg, which is never modified.
func newRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		h, ok := helperFor(w, r, cfg)
		if !ok {
			return
		}
		head := h.RenderContext(r.Context())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			Head   template.HTML
			Title  string
			Source string
		}{
			Head:   template.HTML(head),
			Title:  h.Meta().Title().Text(),
			Source: head,
		}
		if err := previewPage.Execute(w, data); err != nil {
			observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		}
	})

	r.Get("/head", func(w http.ResponseWriter, r *http.Request) {
		h, ok := helperFor(w, r, cfg)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(h.RenderContext(r.Context()) + "\n"))
	})

	r.Get("/tags.json", func(w http.ResponseWriter, r *http.Request) {
		h, ok := helperFor(w, r, cfg)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := seoio.WriteJSON(h.Snapshot(), w); err != nil {
			observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		}
	})

	return r
}

// helperFor builds the helper for a request, applying query overrides.
// On invalid input it writes a 400 response and returns false.
func helperFor(w http.ResponseWriter, r *http.Request, cfg *config.Config) (*seo.Helper, bool) {
	q := r.URL.Query()
	h, err := newHelper(cfg, pageOpts{
		title:       q.Get("title"),
		siteName:    q.Get("site_name"),
		separator:   q.Get("separator"),
		description: q.Get("description"),
		keywords:    q.Get("keywords"),
		url:         q.Get("url"),
		image:       q.Get("image"),
	})
	if err != nil {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		status := http.StatusInternalServerError
		if errs.Is(err, errs.ErrCodeInvalidInput) {
			status = http.StatusBadRequest
		}
		http.Error(w, errs.UserMessage(err), status)
		return nil, false
	}
	return h, true
}

// observe reports every request to the observability HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
