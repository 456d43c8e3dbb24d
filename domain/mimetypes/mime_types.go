package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

type MIME string

const (
	Unknown MIME = "unknown"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWebP MIME = "image/webp"
)

// Images are the formats accepted for post pictures.
var Images = []MIME{ImagePNG, ImageJPEG, ImageGIF, ImageWebP}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// DetectImage sniffs the magic bytes of data and reports whether it is
// one of the accepted image formats.
func DetectImage(data []byte) (MIME, bool) {
	detected := mimetype.Detect(data).String()
	image, found := lo.Find(Images, func(m MIME) bool {
		_, ok := Matches(detected, m)
		return ok
	})
	if !found {
		return Unknown, false
	}
	return image, true
}
