package banner

import "fmt"

// AssetDecodeError reports an image that could not be decoded.
// Asset is "favicon" or the name of the bundled image.
type AssetDecodeError struct {
	Asset string
	Err   error
}

func (e *AssetDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Asset, e.Err)
}

func (e *AssetDecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure to encode the finished banner.
type EncodeError struct {
	MIMEType string
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode banner as %s: %v", e.MIMEType, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
