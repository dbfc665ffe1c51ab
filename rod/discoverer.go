package rod

import (
	"context"
	"net/url"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultIdleWait bounds the wait for network-almost-idle after
// navigation before the live DOM is queried for anchors.
const DefaultIdleWait = 10 * time.Second

// navigationSelectors are evaluated in order against the rendered
// DOM. Generic anchors first, then the places frameworks put
// JS-rendered navigation.
var navigationSelectors = []string{
	"a[href]",
	"nav a[href]",
	`[role="navigation"] a[href]`,
	".sidebar a[href]",
	".menu a[href]",
	"aside a[href]",
}

// Ensure Discoverer implements webgenius.Discoverer at compile time.
var _ webgenius.Discoverer = (*Discoverer)(nil)

// Discoverer finds candidate page URLs by rendering the section root
// and querying the live DOM. It covers navigation that the static
// strategy cannot see because scripts build it.
type Discoverer struct {
	manager  *Manager
	timeout  time.Duration
	idleWait time.Duration
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithDiscoverTimeout sets the per-page navigation timeout.
func WithDiscoverTimeout(d time.Duration) DiscovererOption {
	return func(disc *Discoverer) {
		disc.timeout = d
	}
}

// WithIdleWait sets the bounded wait for network-almost-idle.
func WithIdleWait(d time.Duration) DiscovererOption {
	return func(disc *Discoverer) {
		disc.idleWait = d
	}
}

// NewDiscoverer creates a render-based link discoverer on top of a
// browser Manager.
func NewDiscoverer(manager *Manager, opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{
		manager:  manager,
		timeout:  DefaultFetchTimeout,
		idleWait: DefaultIdleWait,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover renders the section root and returns the absolute,
// same-host anchor URLs from the live DOM in first-seen order.
func (d *Discoverer) Discover(ctx context.Context, section webgenius.Section) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(section.URL())
	if err != nil {
		return nil, webgenius.Errorf(webgenius.EINVALID, "invalid section URL %q: %v", section.URL(), err)
	}

	page, err := d.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(d.timeout)

	// Bounded wait: proceed with whatever has rendered if the network
	// never goes idle.
	wait := page.Timeout(d.idleWait).WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)
	if err := page.Navigate(section.URL()); err != nil {
		return nil, err
	}
	wait()

	seen := make(map[string]struct{})
	var urls []string
	for _, sel := range navigationSelectors {
		elements, err := page.Elements(sel)
		if err != nil {
			continue
		}
		for _, el := range elements {
			href, err := el.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			resolved, ok := webgenius.ResolveLink(base, *href)
			if !ok {
				continue
			}
			if _, dup := seen[resolved]; dup {
				continue
			}
			seen[resolved] = struct{}{}
			urls = append(urls, resolved)
		}
	}
	d.manager.IncrementPageCount()

	return urls, nil
}
