package mimetypes

import (
	"encoding/base64"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Kind is the coarse family an attachment is displayed as.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindFile  Kind = "file"
)

type MIME string

const (
	Unknown        MIME = "unknown"
	TextPlain      MIME = "text/plain"
	ApplicationPDF MIME = "application/pdf"
	ImagePNG       MIME = "image/png"
	ImageJPEG      MIME = "image/jpeg"
	ImageGIF       MIME = "image/gif"
)

// Classify maps a declared media type onto a Kind by its prefix.
// Anything that is not image, video or audio is a generic file.
func Classify(mediaType string) Kind {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	switch {
	case strings.HasPrefix(mt, "image"):
		return KindImage
	case strings.HasPrefix(mt, "video"):
		return KindVideo
	case strings.HasPrefix(mt, "audio"):
		return KindAudio
	default:
		return KindFile
	}
}

// Detect sniffs the media type from the magic bytes of content.
func Detect(content []byte) string {
	return mimetype.Detect(content).String()
}

// Resolve returns the declared media type, falling back to sniffing the
// content when nothing was declared.
func Resolve(declared string, content []byte) string {
	if strings.TrimSpace(declared) != "" {
		return declared
	}
	if len(content) == 0 {
		return string(Unknown)
	}
	return Detect(content)
}

// Base strips parameters such as charset from a media type. A type without
// subtype is Unknown.
func Base(mediaType string) MIME {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil || !strings.Contains(mt, "/") {
		return Unknown
	}
	return MIME(mt)
}

// PreviewRef builds a local data URI for content. It never leaves the process.
// The content is sniffed when mediaType is not a full type.
func PreviewRef(mediaType string, content []byte) string {
	base := Base(mediaType)
	if base == Unknown {
		base = Base(Detect(content))
	}
	return "data:" + string(base) + ";base64," + base64.StdEncoding.EncodeToString(content)
}
