package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimePDF  = "application/pdf"
)

var ErrEmptyData = errors.New("empty data uri payload")

// DataURI is a decoded data:<mime>;base64,<data> string. Data stays base64 encoded.
type DataURI struct {
	MimeType string
	Data     string
}

// ParseDataURI splits a data URI into mime type and base64 payload.
// A string without the data: prefix is taken as a bare base64 JPEG.
func ParseDataURI(s string) (DataURI, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		if s == "" {
			return DataURI{}, ErrEmptyData
		}
		return DataURI{MimeType: MimeJPEG, Data: s}, nil
	}

	header, data, found := strings.Cut(s, ",")
	if !found {
		return DataURI{}, fmt.Errorf("malformed data uri: missing comma")
	}
	if data == "" {
		return DataURI{}, ErrEmptyData
	}

	meta := strings.TrimPrefix(header, "data:")
	params := strings.Split(meta, ";")
	if params[len(params)-1] != "base64" {
		return DataURI{}, fmt.Errorf("unsupported data uri encoding: %q", meta)
	}

	mime := params[0]
	if mime == "" {
		mime = MimeJPEG
	}
	return DataURI{MimeType: strings.ToLower(mime), Data: data}, nil
}

func (d DataURI) String() string {
	return fmt.Sprintf("data:%s;base64,%s", d.MimeType, d.Data)
}

func (d DataURI) Bytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(d.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return raw, nil
}

func NewDataURI(mime string, raw []byte) DataURI {
	return DataURI{MimeType: mime, Data: base64.StdEncoding.EncodeToString(raw)}
}

func EncodeDataURI(mime string, raw []byte) string {
	return NewDataURI(mime, raw).String()
}
