package banner

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// encode encodes img on its own goroutine. The result, or an EncodeError,
// is delivered exactly once on the returned channel.
func (c *Composer) encode(img image.Image, mimeType string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- Result{MIMEType: mimeType, Err: &EncodeError{MIMEType: mimeType, Err: fmt.Errorf("panic: %v", r)}}
			}
		}()

		format, opts := imaging.PNG, []imaging.EncodeOption(nil)
		if mimeType == MIMETypeJPEG {
			format = imaging.JPEG
			if c.settings.JPEGQuality > 0 {
				opts = append(opts, imaging.JPEGQuality(c.settings.JPEGQuality))
			}
		}

		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, format, opts...); err != nil {
			ch <- Result{MIMEType: mimeType, Err: &EncodeError{MIMEType: mimeType, Err: err}}
			return
		}
		ch <- Result{Data: buf.Bytes(), MIMEType: mimeType}
	}()
	return ch
}
