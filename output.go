package passwallet

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// PkpassContentType is the media type of a signed pass archive.
const PkpassContentType = "application/vnd.apple.pkpass"

// DefaultPassFileName is used by WritePass and OutputPass when no file
// name is given.
const DefaultPassFileName = "pass.pkpass"

// WritePass serves a signed pass archive as an attachment on the given
// response writer. Nothing must have been written to w before this
// call, since WritePass sets headers.
func WritePass(w http.ResponseWriter, data []byte, fileName string) error {
	if fileName == "" {
		fileName = DefaultPassFileName
	}

	header := w.Header()
	header.Set("Pragma", "no-cache")
	header.Set("Content-Type", PkpassContentType)
	header.Set("Content-Length", strconv.Itoa(len(data)))
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	_, err := w.Write(data)
	return err
}

// OutputPass downloads a pass and serves it as an attachment on the
// given response writer.
func (c *Client) OutputPass(ctx context.Context, w http.ResponseWriter, pass *Pass, fileName string) error {
	data, err := c.DownloadPass(ctx, pass)
	if err != nil {
		return err
	}
	return WritePass(w, data, fileName)
}

// RedirectToPass resolves the pass URL and redirects the caller's
// client to it. The URL already carried by the pass is used when
// present; otherwise it is fetched from the API first.
func (c *Client) RedirectToPass(ctx context.Context, w http.ResponseWriter, r *http.Request, pass *Pass) error {
	url, err := c.PassURL(ctx, pass)
	if err != nil {
		return err
	}
	http.Redirect(w, r, url, http.StatusFound)
	return nil
}
