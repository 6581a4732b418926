package domain

// Fixed paths and names shared by the page, the renderer and the instance API.
const (
	// InstancesAPIPath is the local endpoint that returns the instance list as a JSON array.
	InstancesAPIPath = "/cgi-bin/distsn-pleroma-instances-api.cgi"
	// PreviewPage is the preview page; the raw domain is appended as its query string.
	PreviewPage = "instance-preview.html"
	// PreviewTarget is the named frame preview links open in.
	PreviewTarget = "distsn-instance-preview"
	// MissingThumbnail is the fallback image for instances without a thumbnail.
	MissingThumbnail = "missing.svg"
	// PlaceholderID is the id of the element that receives the rendered list.
	PlaceholderID = "placeholder"
)
