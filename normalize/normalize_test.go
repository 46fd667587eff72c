package normalize

import "testing"

func TestTextCRLFAndCR(t *testing.T) {
	got := Text("a\r\nb\rc")
	want := "a\nb\nc"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextSmartPunctuation(t *testing.T) {
	got := Text("‘quoted’ “double” –dash— ellipsis…")
	want := "'quoted' \"double\" -dash- ellipsis..."
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextNBSPAndZeroWidth(t *testing.T) {
	got := Text("a b\xef\xbb\xbf​c‌‍")
	want := "a bc"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestTextPlainPassesThrough(t *testing.T) {
	in := "Hello, world! This has no special characters."
	if got := Text(in); got != in {
		t.Errorf("Text() = %q, want unchanged %q", got, in)
	}
}

func TestStripSpeedTagsBasic(t *testing.T) {
	out, tags := StripSpeedTags("Hi [[120]]there.")
	if out != "Hi there." {
		t.Fatalf("out = %q, want %q", out, "Hi there.")
	}
	if len(tags) != 1 || tags[0].WPM != 120 || tags[0].AtIndex != 3 {
		t.Fatalf("tags = %+v, want one tag {AtIndex:3 WPM:120}", tags)
	}
}

func TestStripSpeedTagsMultiByteBeforeTag(t *testing.T) {
	out, tags := StripSpeedTags("café[[90]]later")
	if out != "cafélater" {
		t.Fatalf("out = %q, want %q", out, "cafélater")
	}
	if len(tags) != 1 || tags[0].AtIndex != 4 {
		t.Fatalf("tags = %+v, want AtIndex 4 (rune count, not byte count)", tags)
	}
}

func TestStripSpeedTagsMalformedLeftAsIs(t *testing.T) {
	out, tags := StripSpeedTags("no [[tag here")
	if out != "no [[tag here" {
		t.Fatalf("out = %q, want input unchanged when no valid tag found", out)
	}
	if len(tags) != 0 {
		t.Fatalf("tags = %+v, want none", tags)
	}
}

func TestStripSpeedTagsNoTags(t *testing.T) {
	out, tags := StripSpeedTags("plain text")
	if out != "plain text" || len(tags) != 0 {
		t.Fatalf("got (%q, %+v), want unchanged text and no tags", out, tags)
	}
}
