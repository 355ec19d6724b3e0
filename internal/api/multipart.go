package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// imageSlots is the fixed vocabulary of image part names. Each slot
// also accepts a "2x" suffix for the high-density variant.
var imageSlots = map[string]struct{}{
	"icon":       {},
	"logo":       {},
	"strip":      {},
	"thumbnail":  {},
	"background": {},
	"footer":     {},
}

// allowedImageTypes are the sniffed content types accepted for image
// uploads. image/jpeg covers the API's image/jpg spelling.
var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
}

// Form is an in-memory multipart request body.
type Form struct {
	buf         bytes.Buffer
	contentType string
}

// Reader returns the encoded body.
func (f *Form) Reader() io.Reader {
	return &f.buf
}

// ContentType returns the multipart content type including the
// boundary parameter.
func (f *Form) ContentType() string {
	return f.contentType
}

// BuildPassForm encodes placeholder values and image files into a
// multipart body. Images that fail slot, file or content-type
// validation are skipped with a warning; the form is still built from
// the remaining entries. The values document is attached as a JSON
// file part named "values".
func BuildPassForm(values map[string]any, images map[string]string, logger zerolog.Logger) (*Form, error) {
	form := &Form{}
	writer := multipart.NewWriter(&form.buf)

	// Deterministic part order keeps request bodies reproducible.
	slots := make([]string, 0, len(images))
	for slot := range images {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		path := images[slot]
		if err := writeImagePart(writer, slot, path); err != nil {
			logger.Warn().Str("slot", slot).Str("path", path).Err(err).
				Msg("skipping image")
		}
	}

	if err := writeValuesPart(writer, values); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	form.contentType = writer.FormDataContentType()
	return form, nil
}

// writeImagePart validates one image entry and appends it as a file
// part named after its slot.
func writeImagePart(writer *multipart.Writer, slot, path string) error {
	base := strings.TrimSuffix(slot, "2x")
	if _, ok := imageSlots[base]; !ok || base == "" {
		return fmt.Errorf("unknown image slot %q", slot)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	contentType := http.DetectContentType(data)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return fmt.Errorf("unsupported image type %q", contentType)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		slot, filepath.Base(path)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write image part: %w", err)
	}
	return nil
}

// writeValuesPart appends the placeholder values as a JSON file part.
func writeValuesPart(writer *multipart.Writer, values map[string]any) error {
	if values == nil {
		values = map[string]any{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal values: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="values"; filename="values.json"`)
	header.Set("Content-Type", "application/json")

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create values part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write values part: %w", err)
	}
	return nil
}
