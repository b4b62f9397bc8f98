package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistLines(t *testing.T) {
	classifier := TagClassifier{}

	assert.True(t, classifier.IsPlaylistLine("http://example.com/low.m3u8"))
	assert.True(t, classifier.IsPlaylistLine("hi/main/audio-video.m3u8"))
	assert.True(t, classifier.IsPlaylistLine("/abs/index.m3u8?token=52"))
	assert.True(t, classifier.IsPlaylistLine(`URI="hi/main/audio-video.m3u8"`))

	assert.False(t, classifier.IsPlaylistLine("#EXT-X-STREAM-INF:BANDWIDTH=65000"))
	assert.False(t, classifier.IsPlaylistLine("http://media.example.com/entire.ts"))
	assert.False(t, classifier.IsPlaylistLine(""))
}

func TestSegmentLines(t *testing.T) {
	classifier := TagClassifier{}

	assert.True(t, classifier.IsSegmentLine("http://media.example.com/fileSequence52-1.ts"))
	assert.True(t, classifier.IsSegmentLine("seg_0.ts?expires=1700000000"))
	assert.True(t, classifier.IsSegmentLine("chunk_00.aac"))

	assert.False(t, classifier.IsSegmentLine("http://example.com/low.m3u8"))
	assert.False(t, classifier.IsSegmentLine(`AUDIO="aac"`))
	assert.False(t, classifier.IsSegmentLine("#EXTINF:10,"))
}

func TestDurationLines(t *testing.T) {
	classifier := TagClassifier{}

	assert.True(t, classifier.IsDurationLine("#EXT-X-TARGETDURATION:10"))
	assert.Equal(t, classifier.Duration("#EXT-X-TARGETDURATION:10"), "10")
	assert.Equal(t, classifier.Duration("#EXT-X-TARGETDURATION: 15"), "15")
	assert.Equal(t, classifier.Duration("#EXT-X-TARGETDURATION:5218.5"), "5218.5")

	assert.False(t, classifier.IsDurationLine("#EXT-X-MEDIA-SEQUENCE:10"))
	assert.Equal(t, classifier.Duration("#EXTINF:10,"), "")
}

func TestSequenceLines(t *testing.T) {
	classifier := TagClassifier{}

	assert.True(t, classifier.IsSequenceLine("#EXT-X-MEDIA-SEQUENCE:7794"))
	assert.Equal(t, classifier.Sequence("#EXT-X-MEDIA-SEQUENCE:7794"), "7794")
	assert.Equal(t, classifier.Sequence("#EXT-X-MEDIA-SEQUENCE:0"), "0")

	assert.False(t, classifier.IsSequenceLine("#EXT-X-TARGETDURATION:10"))
	assert.Equal(t, classifier.Sequence("not a tag"), "")
}
