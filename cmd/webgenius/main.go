package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/Abhishek-yadv/WebGenius/crawl"
	"github.com/Abhishek-yadv/WebGenius/fs"
	"github.com/Abhishek-yadv/WebGenius/gemini"
	"github.com/Abhishek-yadv/WebGenius/htmltomarkdown"
	webhttp "github.com/Abhishek-yadv/WebGenius/http"
	"github.com/Abhishek-yadv/WebGenius/markdown"
	"github.com/Abhishek-yadv/WebGenius/rod"
	wgslog "github.com/Abhishek-yadv/WebGenius/slog"
	"github.com/Abhishek-yadv/WebGenius/sqlite"
	"github.com/Abhishek-yadv/WebGenius/trafilatura"
	"github.com/alecthomas/kong"
)

// tokenModel is the Gemini model used for local token counting.
const tokenModel = "gemini-2.0-flash"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Preview          bool          `short:"p" help:"Preview the URLs that would be crawled without fetching"`
	Out              string        `short:"o" default:"." help:"Output directory for results"`
	Concurrency      int           `short:"c" default:"20" help:"Concurrent fetch limit (max 50)"`
	Timeout          time.Duration `short:"t" default:"10s" help:"Direct fetch timeout per page"`
	RPS              float64       `default:"2" help:"Requests per second per domain"`
	Engine           string        `default:"dom" enum:"dom,commonmark" help:"Markdown conversion engine"`
	UserAgent        string        `help:"Override the request User-Agent"`
	Sitemap          bool          `help:"Try robots.txt/sitemap.xml discovery before crawling links"`
	HTTPOnly         bool          `help:"Disable the headless browser tier entirely"`
	NoRenderFallback bool          `help:"Do not escalate failed or thin pages to the browser tier"`
	DB               string        `help:"Also save results to this SQLite database"`
	CountTokens      bool          `help:"Report the LLM token count of the crawled Markdown"`
	Verbose          bool          `short:"v" help:"Enable debug logging"`
	URL              string        `arg:"" required:"" help:"Documentation section URL (e.g. https://docs.example.com/guide)"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webgenius"),
		kong.Description("Crawl a documentation section into ordered, deduplicated Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	section, err := webgenius.ParseSectionURL(cli.URL)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Direct tier
	httpOpts := []webhttp.Option{webhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		httpOpts = append(httpOpts, webhttp.WithUserAgent(cli.UserAgent))
	}
	var direct webgenius.Fetcher = webhttp.NewFetcher(httpOpts...)
	if cli.Verbose {
		direct = wgslog.NewLoggingFetcher(direct, logger)
	}
	defer direct.Close()

	var static webgenius.Discoverer = webhttp.NewDiscoverer(direct)
	if cli.Verbose {
		static = wgslog.NewLoggingDiscoverer(static, logger)
	}

	crawler := &crawl.Crawler{
		Direct:      direct,
		Static:      static,
		Converter:   newConverter(cli.Engine),
		Cleaner:     markdown.NewCleaner(),
		RateLimiter: crawl.NewDomainLimiter(cli.RPS),
		Config: crawl.Config{
			MaxConcurrency:   cli.Concurrency,
			HTTPOnly:         cli.HTTPOnly,
			FallbackToRender: !cli.NoRenderFallback,
		},
		Logger: logger,
	}

	if cli.Sitemap {
		crawler.Sitemaps = webhttp.NewSitemapDiscoverer(nil)
	}

	// Render tier
	if !cli.HTTPOnly {
		manager, err := rod.NewManager()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer manager.Close()

		rodOpts := []rod.Option{}
		if cli.UserAgent != "" {
			rodOpts = append(rodOpts, rod.WithUserAgent(cli.UserAgent))
		}
		var render webgenius.Fetcher = rod.NewFetcher(manager, rodOpts...)
		if cli.Verbose {
			render = wgslog.NewLoggingFetcher(render, logger)
		}
		defer render.Close()

		crawler.Render = render
		crawler.Rendered = rod.NewDiscoverer(manager)
	}

	if cli.Preview {
		return runPreview(ctx, crawler, section, stdout)
	}
	return runCrawl(ctx, crawler, section, cli, stdout, stderr)
}

// newConverter picks the conversion engine. The commonmark engine
// extracts main content first, then converts it with html-to-markdown.
func newConverter(engine string) webgenius.Converter {
	if engine == "commonmark" {
		return htmltomarkdown.NewConverter(
			htmltomarkdown.WithExtractor(trafilatura.NewExtractor()),
		)
	}
	return markdown.NewConverter()
}

func runPreview(ctx context.Context, crawler *crawl.Crawler, section webgenius.Section, stdout io.Writer) error {
	urls, err := crawler.Preview(ctx, section)
	if err != nil {
		return err
	}
	for _, u := range urls {
		fmt.Fprintln(stdout, u)
	}
	return nil
}

func runCrawl(ctx context.Context, crawler *crawl.Crawler, section webgenius.Section, cli *CLI, stdout, stderr io.Writer) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(stdout, "Found %d URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(stderr, "skip %s: %v\n", event.URL, event.Error)
			fmt.Fprintf(stdout, "\r[%d/%d] %s", event.Completed, event.Total, truncateURL(event.URL, 40))
		case crawl.ProgressCompleted:
			fmt.Fprintf(stdout, "\r[%d/%d] %s", event.Completed, event.Total, truncateURL(event.URL, 40))
		case crawl.ProgressFinished:
			fmt.Fprintf(stdout, "\r%80s\r", "")
		}
	}

	result, err := crawler.CrawlSection(ctx, section, progress)
	if err != nil {
		return err
	}

	stores := []webgenius.ResultStore{fs.NewWriter(cli.Out)}
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		stores = append(stores, sqlite.NewResultStore(db))
	}
	for _, store := range stores {
		if err := store.SaveResult(ctx, result); err != nil {
			return err
		}
	}

	accepted := result.Accepted()
	fmt.Fprintf(stdout, "Saved %d pages (%d accepted, %d failed)\n",
		len(result.Pages), len(accepted), len(result.Pages)-len(accepted))

	if cli.CountTokens {
		counter, err := gemini.NewTokenCounter(tokenModel)
		if err != nil {
			return err
		}
		total := 0
		for _, page := range accepted {
			n, err := counter.CountTokens(ctx, page.Markdown)
			if err != nil {
				return err
			}
			total += n
		}
		fmt.Fprintf(stdout, "Token count: %d\n", total)
	}

	return nil
}

// truncateURL shortens a URL for display by showing only the path.
// This makes progress more useful when many URLs share the same host
// prefix.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Truncate from the left to show the unique suffix
	return "..." + path[len(path)-maxLen+3:]
}
