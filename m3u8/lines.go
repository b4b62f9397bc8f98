package m3u8

import "regexp"

// LineClassifier decides which line family a single line of playlist
// text belongs to and extracts the values declared on it. The parser
// depends only on this contract, so additional tag grammars can be
// substituted through NewWithClassifier without touching the parser's
// control flow.
type LineClassifier interface {
	// IsPlaylistLine reports whether the line references a nested playlist.
	IsPlaylistLine(line string) bool

	// IsSegmentLine reports whether the line references a media segment.
	IsSegmentLine(line string) bool

	// IsDurationLine reports whether the line declares the target
	// duration, whose value Duration extracts as text.
	IsDurationLine(line string) bool
	Duration(line string) string

	// IsSequenceLine reports whether the line declares the media
	// sequence number, whose value Sequence extracts as text.
	IsSequenceLine(line string) bool
	Sequence(line string) string
}

const (
	// A reference token is a run of non-space, non-quote characters
	// containing the file extension, optionally followed by a query
	// string. Quotes are excluded so tokens inside quoted attribute
	// values (URI="...") come out bare.
	playlistLineRegex string = `[^\s"]*\.m3u8[^\s"]*`
	segmentLineRegex  string = `[^\s"]*\.(?:ts|aac)[^\s"]*`

	// Defined in Section 4.3.3.1 and 4.3.3.2
	durationRegex string = `#EXT-X-TARGETDURATION:\s*([0-9.]+)`
	sequenceRegex string = `#EXT-X-MEDIA-SEQUENCE:\s*([0-9]+)`
)

var (
	playlistLinePattern = regexp.MustCompile(playlistLineRegex)
	segmentLinePattern  = regexp.MustCompile(segmentLineRegex)
	durationPattern     = regexp.MustCompile(durationRegex)
	sequencePattern     = regexp.MustCompile(sequenceRegex)
)

// TagClassifier is the default LineClassifier. It recognizes .m3u8
// nested-playlist tokens, .ts/.aac segment tokens, and the
// EXT-X-TARGETDURATION and EXT-X-MEDIA-SEQUENCE declarations.
type TagClassifier struct{}

// IsPlaylistLine reports whether the line contains a .m3u8 reference token
func (TagClassifier) IsPlaylistLine(line string) bool {
	return playlistLinePattern.MatchString(line)
}

// IsSegmentLine reports whether the line contains a .ts or .aac reference token
func (TagClassifier) IsSegmentLine(line string) bool {
	return segmentLinePattern.MatchString(line)
}

// IsDurationLine reports whether the line is an EXT-X-TARGETDURATION declaration
func (TagClassifier) IsDurationLine(line string) bool {
	return durationPattern.MatchString(line)
}

// Duration extracts the declared target duration, or an empty string if
// the line is not a duration declaration.
func (TagClassifier) Duration(line string) string {
	if match := durationPattern.FindStringSubmatch(line); match != nil {
		return match[1]
	}
	return ""
}

// IsSequenceLine reports whether the line is an EXT-X-MEDIA-SEQUENCE declaration
func (TagClassifier) IsSequenceLine(line string) bool {
	return sequencePattern.MatchString(line)
}

// Sequence extracts the declared media sequence number, or an empty
// string if the line is not a sequence declaration.
func (TagClassifier) Sequence(line string) string {
	if match := sequencePattern.FindStringSubmatch(line); match != nil {
		return match[1]
	}
	return ""
}
