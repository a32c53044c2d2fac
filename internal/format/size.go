package format

// SizeClass describes what an input length means for reconstruction.
type SizeClass int

const (
	SizeTooSmall SizeClass = iota // shorter than a full image and not a half image
	SizeTooBig                    // longer than a full image plus footer leeway
	SizeHalf                      // a half image; inflate before scanning
	SizeFull                      // a full image; truncate to FullSize and scan
)

func (c SizeClass) String() string {
	switch c {
	case SizeTooSmall:
		return "too small"
	case SizeTooBig:
		return "too big"
	case SizeHalf:
		return "half"
	case SizeFull:
		return "full"
	default:
		return "unknown"
	}
}

// ClassifySize picks the pre-processing path for an input of n bytes.
func ClassifySize(n int) SizeClass {
	switch {
	case n >= HalfSize && n <= HalfSize+FooterLeeway:
		return SizeHalf
	case n < FullSize:
		return SizeTooSmall
	case n > FullSize+FooterLeeway:
		return SizeTooBig
	default:
		return SizeFull
	}
}

// IsSizeWorthLookingAt reports whether a file of size bytes could possibly
// hold an image. It is a cheap pre-check before reading the file.
func IsSizeWorthLookingAt(size int64) bool {
	return size <= FullSize+FooterLeeway
}
