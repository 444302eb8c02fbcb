package scrape

// DedupSet tracks normalized detail URLs already queued within one source
// scrape. Deduplication is per source and per run only: the same business
// listed on two different sites is kept on both.
type DedupSet struct {
	seen map[string]struct{}
}

func NewDedupSet() *DedupSet {
	return &DedupSet{seen: make(map[string]struct{})}
}

// Insert reports whether the URL was newly added.
func (d *DedupSet) Insert(url string) bool {
	if _, ok := d.seen[url]; ok {
		return false
	}
	d.seen[url] = struct{}{}
	return true
}

func (d *DedupSet) Len() int { return len(d.seen) }
