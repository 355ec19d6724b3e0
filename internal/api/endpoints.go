package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreatePass creates a pass from a template addressed by numeric id.
func (c *Client) CreatePass(ctx context.Context, templateID int64, values map[string]any, images map[string]string) (*Pass, error) {
	path := fmt.Sprintf("/templates/%d/pass", templateID)
	return c.createPass(ctx, path, values, images)
}

// CreatePassByName creates a pass from a template addressed by name.
func (c *Client) CreatePassByName(ctx context.Context, templateName string, values map[string]any, images map[string]string) (*Pass, error) {
	path := fmt.Sprintf("/templates/names/%s/pass", url.PathEscape(templateName))
	return c.createPass(ctx, path, values, images)
}

// createPass posts placeholder values, and images when present, to a
// template resource. With images the body is multipart; without, a
// plain JSON document.
func (c *Client) createPass(ctx context.Context, path string, values map[string]any, images map[string]string) (*Pass, error) {
	var pass Pass

	if len(images) == 0 {
		if values == nil {
			values = map[string]any{}
		}
		if err := c.Do(ctx, http.MethodPost, path, values, &pass); err != nil {
			return nil, err
		}
		return &pass, nil
	}

	form, err := BuildPassForm(values, images, c.logger)
	if err != nil {
		return nil, err
	}
	if err := c.DoMultipart(ctx, path, form, &pass); err != nil {
		return nil, err
	}
	return &pass, nil
}

// DownloadPass fetches the signed pass archive.
func (c *Client) DownloadPass(ctx context.Context, passTypeID, serialNumber string) ([]byte, error) {
	path := fmt.Sprintf("/passes/%s/%s",
		url.PathEscape(passTypeID), url.PathEscape(serialNumber))
	return c.DoRaw(ctx, http.MethodGet, path)
}

// GetPassURL fetches the public URL of a pass.
func (c *Client) GetPassURL(ctx context.Context, passTypeID, serialNumber string) (string, error) {
	path := fmt.Sprintf("/passes/%s/%s/url",
		url.PathEscape(passTypeID), url.PathEscape(serialNumber))
	var result passURLResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

// EmailPass asks the server to mail the pass to the given address. The
// response body carries nothing of interest and is discarded.
func (c *Client) EmailPass(ctx context.Context, passTypeID, serialNumber, email string) error {
	path := fmt.Sprintf("/passes/%s/%s/email",
		url.PathEscape(passTypeID), url.PathEscape(serialNumber))
	return c.Do(ctx, http.MethodPost, path, emailRequest{Email: email}, nil)
}
