// Package m3u8 classifies M3U8 playlist text as a master or media
// playlist and resolves the references it contains against the locator
// the text was retrieved from. It only ever looks at text that has
// already been fetched; scheduling and performing the fetches is left to
// the caller.
package m3u8

/*
Tag and section references are from RFC 8216 Protocol Version 7.

Only four line families are recognized; everything else is ignored:

#EXT-X-STREAM-INF URI lines / bare .m3u8 paths  -> nested playlist reference
.ts / .aac tokens                               -> media segment reference
#EXT-X-TARGETDURATION (4.3.3.1)                 -> target duration declaration
#EXT-X-MEDIA-SEQUENCE (4.3.3.2)                 -> media sequence declaration

A document containing both nested-playlist and segment tokens cannot be
classified and is reported invalid, as is one containing neither.

-----     [^\s"]*\.m3u8[^\s"]*
http://example.com/low.m3u8
hi/main/audio-video.m3u8
/abs/path/index.m3u8?token=52
URI="hi/main/audio-video.m3u8"   // matches the bare token, quotes excluded
#EXT-X-STREAM-INF:BANDWIDTH=65000  [NO MATCH] (URI is on the next line)

-----     [^\s"]*\.(?:ts|aac)[^\s"]*
http://media.example.com/fileSequence52-1.ts
segment_0007.aac
seg_0.ts?expires=1700000000
AUDIO="aac"                      [NO MATCH] (no extension dot)

-----     #EXT-X-TARGETDURATION:\s*([0-9.]+)
#EXT-X-TARGETDURATION:10
#EXT-X-TARGETDURATION: 15
#EXT-X-TARGETDURATION:5218.5

-----     #EXT-X-MEDIA-SEQUENCE:\s*([0-9]+)
#EXT-X-MEDIA-SEQUENCE:7794
#EXT-X-MEDIA-SEQUENCE:0
*/
