package passwallet

// Pass is a server-issued pass record, identified by the pair of pass
// type identifier and serial number. The URL field is populated only
// when the server has already assigned a public link. Pass values are
// created by the server; callers never construct one themselves.
type Pass struct {
	PassTypeIdentifier string `json:"passTypeIdentifier"`
	SerialNumber       string `json:"serialNumber"`
	URL                string `json:"url,omitempty"`
}

// Values maps template placeholder names to their substitution values.
type Values map[string]any

// Images maps image slot names to local file paths. Valid slots are
// icon, logo, strip, thumbnail, background and footer, each optionally
// suffixed with "2x" for the high-density variant. Entries with an
// unknown slot, a missing file or an unsupported image format are
// skipped with a warning; they do not abort pass creation.
type Images map[string]string
