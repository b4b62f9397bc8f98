package m3u8

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	schemeRegex string = `^[a-zA-Z][a-zA-Z0-9+.-]*://`

	// The filename the source locator ends in: the run of non-slash
	// characters up to and including .m3u8
	sourceFileRegex string = `[^/]*\.m3u8`
)

var (
	schemePattern     = regexp.MustCompile(schemeRegex)
	sourceFilePattern = regexp.MustCompile(sourceFileRegex)
)

// Resolve turns a raw playlist or segment reference into an absolute
// locator. First matching rule wins:
//
//  1. A reference with an explicit scheme passes through unchanged.
//  2. A root-relative reference (leading slash) is joined to domain,
//     the scheme://host prefix of the playlist's source.
//  3. Any other reference replaces the .m3u8 filename of source,
//     resolving it against the directory the playlist came from.
//
// The second return is false when none of the rules apply, which happens
// for a relative reference on a playlist with no source.
func Resolve(raw, domain, source string) (string, bool) {
	switch {
	case schemePattern.MatchString(raw):
		return raw, true
	case strings.HasPrefix(raw, "/"):
		return domain + raw, true
	case source != "":
		if loc := sourceFilePattern.FindStringIndex(source); loc != nil {
			return source[:loc[0]] + raw + source[loc[1]:], true
		}
		return source, true
	}
	return "", false
}

// domainOf derives the scheme://host prefix used to resolve root-relative
// references. A source that is not an absolute HTTP(S) locator, malformed
// ones included, yields an empty domain.
func domainOf(source string) string {
	parsed, err := url.Parse(source)
	if err != nil || parsed.Host == "" {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
