// Package rod provides the render tier: fetching and link discovery
// through a headless Chrome browser for pages whose content or
// navigation is built by JavaScript.
package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of rendered pages before the
// browser is recycled.
const DefaultMaxPages = 75

// Manager owns the headless browser process for a crawl. Chrome
// accumulates memory under sustained page churn and never returns to
// its baseline, so the browser is recycled after a page budget.
//
// Manager is safe for concurrent use.
type Manager struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxPages sets the number of rendered pages before the browser
// is recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(m *Manager) {
		m.maxPages = n
	}
}

// NewManager launches a headless Chrome browser. Close must be called
// when the Manager is no longer needed.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.launchBrowser(); err != nil {
		return nil, err
	}

	return m, nil
}

// Browser returns the current browser instance, recycling it first if
// the page budget is spent. Callers report page use through
// IncrementPageCount.
func (m *Manager) Browser() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	if atomic.LoadInt64(&m.pageCount) >= m.maxPages {
		m.recycleBrowser()
	}

	return m.browser
}

// IncrementPageCount records one rendered page toward the recycling
// threshold.
func (m *Manager) IncrementPageCount() {
	atomic.AddInt64(&m.pageCount, 1)
}

// Close releases browser resources. Close is safe to call multiple
// times.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (m *Manager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	m.browser = browser
	m.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (m *Manager) closeBrowser() error {
	var err error
	if m.browser != nil {
		err = m.browser.Close()
		m.browser = nil
	}
	if m.launcher != nil {
		m.launcher.Kill()
		m.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one. The
// old browser is kept if the new launch fails.
// Must be called with mu held.
func (m *Manager) recycleBrowser() {
	oldBrowser := m.browser
	oldLauncher := m.launcher
	m.browser = nil
	m.launcher = nil

	if err := m.launchBrowser(); err != nil {
		m.browser = oldBrowser
		m.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&m.pageCount, 0)
}
