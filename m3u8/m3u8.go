package m3u8

import (
	"strings"
)

// headerTag marks the start of an extended M3U playlist. Its presence
// anywhere in the text is required for the playlist to be valid.
const headerTag = "#EXTM3U"

// Kind is the classification outcome for a parsed playlist
type Kind int

const (
	// KindInvalid, KindMaster and KindMedia are the classification
	// outcomes returned from Type to provide the user with a way to
	// determine the playlist kind. KindInvalid covers empty,
	// unrecognizable and mixed content.
	KindInvalid Kind = iota
	KindMaster
	KindMedia
)

// Playlist holds one M3U8 document: the raw text, the locator it was
// retrieved from, and everything the parser extracted. It never performs
// network I/O; fetching the text (and anything it references) is the
// caller's job.
//
// A Playlist is not safe for concurrent use; callers sharing one across
// goroutines must serialize SetText against the read methods.
type Playlist struct {
	classifier LineClassifier
	text       string
	source     string
	domain     string
	valid      bool
	kind       Kind
	variants   []string
	segments   []string
	duration   string
	sequence   string
}

// New parses text as an M3U8 playlist. source is the locator the text was
// retrieved from and is used only to resolve relative references; it may
// be empty, in which case relative references stay unresolved.
func New(text, source string) *Playlist {
	return NewWithClassifier(text, source, TagClassifier{})
}

// NewWithClassifier is New with a caller-supplied line classifier,
// allowing tag sets beyond the default grammar to be recognized.
func NewWithClassifier(text, source string, classifier LineClassifier) *Playlist {
	playlist := &Playlist{
		classifier: classifier,
		text:       text,
		source:     source,
		domain:     domainOf(source),
	}
	playlist.parse()
	return playlist
}

// SetText replaces the playlist text and re-parses it. Validity and kind
// reflect only the new text, and metadata declarations overwrite earlier
// ones, but references found by earlier parses are kept and new matches
// appended. Callers that want a clean slate should construct a new
// Playlist instead. The source, and the domain derived from it, is fixed
// at construction and not recomputed here.
func (p *Playlist) SetText(text string) {
	p.text = text
	p.parse()
}

func (p *Playlist) parse() {
	p.valid = strings.Contains(p.text, headerTag)

	lines := strings.Split(p.text, "\n")

	// Kind is decided for the text as a whole: a single line of the
	// other family anywhere makes the document ambiguous.
	var hasPlaylist, hasSegment bool
	for _, line := range lines {
		if p.classifier.IsPlaylistLine(line) {
			hasPlaylist = true
		}
		if p.classifier.IsSegmentLine(line) {
			hasSegment = true
		}
		if hasPlaylist && hasSegment {
			break
		}
	}

	switch {
	case hasPlaylist && !hasSegment:
		p.kind = KindMaster
		for _, line := range lines {
			if p.classifier.IsPlaylistLine(line) {
				if ref := playlistLinePattern.FindString(line); ref != "" {
					p.variants = append(p.variants, strings.TrimSpace(ref))
				}
			}
		}
	case hasSegment && !hasPlaylist:
		p.kind = KindMedia
		for _, line := range lines {
			switch {
			case p.classifier.IsSegmentLine(line):
				if ref := segmentLinePattern.FindString(line); ref != "" {
					p.segments = append(p.segments, strings.TrimSpace(ref))
				}
			case p.classifier.IsDurationLine(line):
				p.duration = p.classifier.Duration(strings.TrimSpace(line))
			case p.classifier.IsSequenceLine(line):
				p.sequence = p.classifier.Sequence(strings.TrimSpace(line))
			}
		}
	default:
		p.kind = KindInvalid
		p.valid = false
	}
}

// IsValid reports whether the most recent parse found the #EXTM3U marker
// and classified the text unambiguously as exactly one playlist kind.
// The kind predicates and reference lists should only be trusted when
// this returns true.
func (p *Playlist) IsValid() bool {
	return p.valid
}

// IsMaster reports whether the playlist is a valid master playlist, one
// referencing nested playlists for alternate bitrates or renditions.
func (p *Playlist) IsMaster() bool {
	return p.valid && p.kind == KindMaster
}

// IsMedia reports whether the playlist is a valid media playlist, one
// referencing ordered media segments plus their timing metadata.
func (p *Playlist) IsMedia() bool {
	return p.valid && p.kind == KindMedia
}

// Type returns the playlist kind, or KindInvalid if the playlist is not
// valid. IsMaster and IsMedia exist for the common checks.
func (p *Playlist) Type() Kind {
	if !p.valid {
		return KindInvalid
	}
	return p.kind
}

// Variants returns the unresolved nested-playlist references in file
// order, accumulated across every parse of this instance.
func (p *Playlist) Variants() []string {
	return p.variants
}

// Segments returns the unresolved media segment references in file
// order, accumulated across every parse of this instance.
func (p *Playlist) Segments() []string {
	return p.segments
}

// ResolvedVariants resolves every raw nested-playlist reference against
// the playlist's domain and source. The result is recomputed on every
// call and has the same length as Variants; a reference that cannot be
// resolved is left as an empty string so index correspondence with the
// raw list is kept.
func (p *Playlist) ResolvedVariants() []string {
	return p.resolveAll(p.variants)
}

// ResolvedSegments is ResolvedVariants for the media segment references.
func (p *Playlist) ResolvedSegments() []string {
	return p.resolveAll(p.segments)
}

func (p *Playlist) resolveAll(refs []string) []string {
	resolved := make([]string, len(refs))
	for i, ref := range refs {
		if abs, ok := Resolve(ref, p.domain, p.source); ok {
			resolved[i] = abs
		}
	}
	return resolved
}

// TargetDuration returns the value of the last EXT-X-TARGETDURATION
// declaration seen, or an empty string if none has been.
func (p *Playlist) TargetDuration() string {
	return p.duration
}

// MediaSequence returns the value of the last EXT-X-MEDIA-SEQUENCE
// declaration seen, or an empty string if none has been.
func (p *Playlist) MediaSequence() string {
	return p.sequence
}

// Source returns the locator the playlist text was retrieved from, or an
// empty string if none was given.
func (p *Playlist) Source() string {
	return p.source
}

// String returns the raw playlist text verbatim
func (p *Playlist) String() string {
	return p.text
}
