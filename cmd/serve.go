package main

import (
	"context"
	"errors"
	"guidiqo/internal/admin"
	"guidiqo/internal/api"
	"guidiqo/internal/api/handler/v1handler"
	"guidiqo/internal/brandkit"
	"guidiqo/internal/config"
	"guidiqo/internal/newsletter"
	"guidiqo/internal/stockphoto"
	"guidiqo/internal/suggest"
	"guidiqo/internal/worker"
	"guidiqo/pkg/htmlpdf"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/mailer"
	"guidiqo/pkg/mailer/resend"
	"guidiqo/pkg/metrics"
	"guidiqo/pkg/stockphoto/pexels"
	"guidiqo/pkg/stockphoto/unsplash"
	"guidiqo/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pkgstockphoto "guidiqo/pkg/stockphoto"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	debugServer := api.NewDebugServer(api.NewOptions(cfg))
	if debugServer != nil {
		go func() {
			logger.Info(ctx, "starting debug server...", zap.String("addr", debugServer.Addr))
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start debug server", zap.Error(err))
			}
		}()
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if debugServer != nil {
			if err := debugServer.Shutdown(ctx); err != nil {
				logger.Error(ctx, "could not stop debug server", zap.Error(err))
			}
		}
	}
}

// setupProxy creates the stock-photo proxy over every provider with a key.
func setupProxy(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) stockphoto.Proxy {
	httpClient := &http.Client{Timeout: cfg.Images.HTTPTimeout}

	var providers []pkgstockphoto.Client
	if cfg.Images.UnsplashKey != "" {
		providers = append(providers, unsplash.New(httpClient, cfg.Images.UnsplashKey))
	}
	if cfg.Images.PexelsKey != "" {
		providers = append(providers, pexels.New(httpClient, cfg.Images.PexelsKey))
	}
	if len(providers) == 0 {
		logger.Warn(ctx, "no stock-photo provider configured, serving the fallback image only")
	}

	proxy, err := stockphoto.New(stockphoto.NewOptions(cfg), mp, providers...)
	if err != nil {
		logger.Fatal(ctx, "could not create stock-photo proxy", zap.Error(err))
	}

	return proxy
}

// setupSweeper periodically drops expired cache entries and idle rate-limit buckets.
func setupSweeper(ctx context.Context, cfg *config.Config, proxy stockphoto.Proxy) func() {
	c := cron.New()
	_, err := c.AddFunc(cfg.Images.SweepSchedule, func() {
		cacheRemoved, bucketsRemoved := proxy.Sweep(time.Now())
		logger.Debug(ctx, "swept stock-photo proxy",
			zap.Int("cacheRemoved", cacheRemoved),
			zap.Int("bucketsRemoved", bucketsRemoved))
	})
	if err != nil {
		logger.Fatal(ctx, "could not schedule stock-photo sweep", zap.Error(err))
	}
	c.Start()

	return func() {
		<-c.Stop().Done()
	}
}

func setupRenderer(ctx context.Context, cfg *config.Config) (htmlpdf.Renderer, func()) {
	if cfg.Export.Disabled {
		logger.Info(ctx, "PDF export disabled")

		return nil, func() {}
	}

	renderer := htmlpdf.New(htmlpdf.Options{ControlURL: cfg.Export.ChromeURL})

	return renderer, func() {
		if err := renderer.Close(); err != nil {
			logger.Warn(ctx, "could not close PDF renderer", zap.Error(err))
		}
	}
}

func setupSuggester(ctx context.Context, cfg *config.Config) suggest.Suggester {
	var generator suggest.Generator
	if cfg.AI.GeminiKey != "" {
		var err error
		if generator, err = suggest.NewGemini(ctx, cfg.AI.GeminiKey, cfg.AI.Model); err != nil {
			logger.Warn(ctx, "could not create gemini client, using the catalog only", zap.Error(err))
			generator = nil
		}
	}

	return suggest.New(generator, suggest.NewOptions(cfg))
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	composer newsletter.Composer,
	sender mailer.Sender) func(ctx context.Context) {
	workerOpts := worker.NewOptions(cfg)
	riverClient, err := worker.Start(ctx, pgsql.Pool, workerOpts,
		worker.NewNewsletterWorker(pgsql, sender, composer, workerOpts))
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			proxy := setupProxy(ctx, cfg, mp)
			stopSweeper := setupSweeper(ctx, cfg, proxy)

			renderer, closeRenderer := setupRenderer(ctx, cfg)
			defer closeRenderer()

			if cfg.Newsletter.ResendKey == "" {
				logger.Warn(ctx, "no resend api key configured, newsletter delivery will fail")
			}
			sender := resend.New(&http.Client{Timeout: 30 * time.Second}, cfg.Newsletter.ResendKey, "")
			newsletterOpts := newsletter.NewOptions(cfg)

			stopWorker := setupWorker(ctx, cfg, pgsql, newsletterOpts.Composer, sender)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					BrandKit:   brandkit.New(pgsql, renderer, brandkit.NewOptions(cfg)),
					Proxy:      proxy,
					Suggester:  setupSuggester(ctx, cfg),
					Admin:      admin.New(pgsql, admin.NewOptions(cfg)),
					Newsletter: newsletter.New(pgsql, sender, newsletterOpts),
				},
				MeterProvider: mp,
				Gatherer:      prometheus.DefaultGatherer,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			stopSweeper()
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
