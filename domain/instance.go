package domain

// InstanceDescriptor describes one federated server shown in the instance list.
// Fields match API: domain, title, thumbnail, speed.
type InstanceDescriptor struct {
	Domain    string  // unique server identifier, also the fallback label
	Title     string  // optional display name
	Thumbnail string  // optional image URL or path; empty means "no thumbnail"
	Speed     float64 // local posts per second measured by the collector; 0 when never measured
}

// HasTitle reports whether the descriptor carries a non-empty display name.
func (d InstanceDescriptor) HasTitle() bool {
	return d.Title != ""
}

// HasThumbnail reports whether the descriptor carries a non-empty thumbnail.
func (d InstanceDescriptor) HasThumbnail() bool {
	return d.Thumbnail != ""
}
