package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/markopoloparadox/web-crawler/internal/api"
	"github.com/markopoloparadox/web-crawler/internal/archiver"
	"github.com/markopoloparadox/web-crawler/internal/build"
	"github.com/markopoloparadox/web-crawler/internal/cache"
	"github.com/markopoloparadox/web-crawler/internal/config"
	"github.com/markopoloparadox/web-crawler/internal/engine"
	"github.com/markopoloparadox/web-crawler/internal/fetcher"
	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/internal/robots"
	"github.com/markopoloparadox/web-crawler/internal/store"
)

var (
	cfgFile                string
	listenAddr             string
	concurrency            int
	userAgent              string
	archiveRoot            string
	timeout                time.Duration
	robotsEnabledByDefault bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "web-crawler",
	Short:   "A single-domain web crawler exposed as an HTTP service.",
	Version: build.FullVersion(),
	Long: `web-crawler serves a small HTTP façade over a concurrent crawl
engine: submit a base URL and bounds to /spider, then query the
resulting page list or count by the returned fingerprint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		return serve(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen-addr", "", "address the HTTP façade binds to")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "crawl worker pool size, clamped to [3, 50]")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "user agent string sent with every fetch")
	rootCmd.PersistentFlags().StringVar(&archiveRoot, "archive-root", "", "root directory archived pages are written under")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "wall-clock timeout applied to every outbound page fetch")
	rootCmd.PersistentFlags().BoolVar(&robotsEnabledByDefault, "robots-enabled-by-default", false, "consult robots.txt when a request omits robots_txt")
}

// resolveConfig builds a config.Config from --config-file if given,
// otherwise from the default builder overridden by whichever flags the
// caller actually set.
func resolveConfig() (config.Config, error) {
	if cfgFile != "" {
		fmt.Printf("Initializing config from file: %s\n", cfgFile)
		return config.WithConfigFile(cfgFile)
	}

	builder := config.WithDefault()

	if listenAddr != "" {
		builder = builder.WithListenAddr(listenAddr)
	}
	if concurrency > 0 {
		builder = builder.WithConcurrency(concurrency)
	}
	if userAgent != "" {
		builder = builder.WithUserAgent(userAgent)
	}
	if archiveRoot != "" {
		builder = builder.WithArchiveRoot(archiveRoot)
	}
	if timeout > 0 {
		builder = builder.WithTimeout(timeout)
	}
	if robotsEnabledByDefault {
		builder = builder.WithRobotsEnabledByDefault(true)
	}

	return builder.Build()
}

// serve wires the crawl engine, HTTP façade, and process-wide stores from
// cfg, then blocks serving requests until interrupted.
func serve(cfg config.Config) error {
	sink := metadata.NewStderrRecorder()

	httpClient := &http.Client{Timeout: cfg.Timeout()}
	htmlFetcher := fetcher.NewHtmlFetcher(sink)
	htmlFetcher.Init(httpClient)

	eng := engine.New(
		&htmlFetcher,
		cache.NewDocumentCache(),
		archiver.NewArchiver(cfg.ArchiveRoot(), sink),
		robots.NewChecker(true, cfg.UserAgent(), sink),
		sink,
		cfg.UserAgent(),
		cfg.Concurrency(),
	)

	server := api.NewServer(eng, store.NewResultStore(), sink, cfg.RobotsEnabledByDefault())

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("listening on %s\n", cfg.ListenAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
		fmt.Println("shutting down")
		return httpServer.Close()
	}
}

func ResetFlags() {
	cfgFile = ""
	listenAddr = ""
	concurrency = 0
	userAgent = ""
	archiveRoot = ""
	timeout = 0
	robotsEnabledByDefault = false
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetListenAddrForTest(addr string) {
	listenAddr = addr
}

func SetConcurrencyForTest(conc int) {
	concurrency = conc
}

func SetUserAgentForTest(agent string) {
	userAgent = agent
}

func SetArchiveRootForTest(dir string) {
	archiveRoot = dir
}

func SetTimeoutForTest(t time.Duration) {
	timeout = t
}

func SetRobotsEnabledByDefaultForTest(enabled bool) {
	robotsEnabledByDefault = enabled
}
