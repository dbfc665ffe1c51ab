package crawl

// Normalize exposes Config.normalize for tests.
func (c Config) Normalize() Config {
	return c.normalize()
}
