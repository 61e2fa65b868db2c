package convert

import (
	"fmt"
	"strings"
	"testing"
)

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want contentKind
	}{
		{"json object", `{"a":1,"b":[2,3]}`, contentJSON},
		{"json array", `[1,2,3]`, contentJSON},
		{"json with surrounding whitespace", "  {\"a\":1}\n", contentJSON},
		{"xml declaration", `<?xml version="1.0"?><root><a/></root>`, contentXML},
		{"xml element", `<root><a>1</a></root>`, contentXML},
		{"base64", "U29tZSBiYXNlNjQgZGF0YQ==", contentBase64},
		{"base64 with padding", strings.Repeat("QUJD", 5) + "Zg==", contentBase64},
		{"plain prose", "the quick brown fox jumps over the lazy dog", contentText},
		{"short word", "hello", contentText},
		// A long uniform run satisfies the alphabet and length rules but
		// is plain text, not an encoded payload.
		{"uniform character run", strings.Repeat("x", 40000), contentText},
		// Precedence: a bracketed payload of base64 characters is
		// JSON-shaped, and the JSON check runs first.
		{"json wins over base64", "[" + strings.Repeat("U29t", 6) + "]", contentJSON},
		// Precedence: an xml-shaped payload never reaches the base64 check.
		{"xml wins over base64", "<" + strings.Repeat("U29t", 6) + ">", contentXML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyContent(tt.in); got != tt.want {
				t.Errorf("classifyContent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsBase64Like(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"below 20 chars", strings.Repeat("QUJD", 4), false},
		{"exactly 20 chars", "QUJDREVGR0hJSktMTU5P", true},
		{"length not multiple of 4", "QUJDREVGR0hJSktMTU5Pabc", false},
		{"two trailing pads", strings.Repeat("QUJD", 5) + "Zg==", true},
		{"pad in the middle", "QUJD=EVGR0hJSktMTU5PQUJD", false},
		{"char outside alphabet", "QUJDREVGR0hJSktMTU5-", false},
		{"single repeated character", strings.Repeat("x", 40), false},
		{"single character class", strings.Repeat("QUJD", 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBase64Like(tt.in); got != tt.want {
				t.Errorf("isBase64Like(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayText_PlainText(t *testing.T) {
	full := strings.Repeat("x", 40000)
	want := fmt.Sprintf("📝 [blob: 40000字符] %s...", strings.Repeat("x", 100))
	if got := displayText(contentText, "blob", full); got != want {
		t.Errorf("displayText = %q, want %q", got, want)
	}
}

func TestDisplayText_JSON(t *testing.T) {
	full := "{" + strings.Repeat("a", 300) + "}"
	want := fmt.Sprintf("📊 [JSON数据: 302字符] %s...", full[:200])
	if got := displayText(contentJSON, "payload", full); got != want {
		t.Errorf("displayText = %q, want %q", got, want)
	}
}

func TestDisplayText_XML(t *testing.T) {
	full := "<root>" + strings.Repeat("b", 300) + "</root>"
	want := fmt.Sprintf("📋 [XML数据: %d字符] %s...", len(full), full[:200])
	if got := displayText(contentXML, "payload", full); got != want {
		t.Errorf("displayText = %q, want %q", got, want)
	}
}

func TestDisplayText_Base64HasNoPreview(t *testing.T) {
	full := strings.Repeat("QUJD", 10000)
	want := "🔒 [Base64数据: 40000字符]"
	if got := displayText(contentBase64, "blob", full); got != want {
		t.Errorf("displayText = %q, want %q", got, want)
	}
}

func TestCommentText_TruncatedValue(t *testing.T) {
	full := strings.Repeat("x", 40000)
	got := commentText(contentText, "blob", full, 1000)

	if !strings.HasPrefix(got, "字段: blob\n总长度: 40000 字符\n") {
		t.Errorf("missing header lines:\n%s", got[:min(200, len(got))])
	}
	if n := strings.Count(got, "x"); n != 1000 {
		t.Errorf("preview should hold exactly 1000 characters, found %d", n)
	}
	if !strings.Contains(got, "... [剩余 39000 字符未显示]") {
		t.Error("missing omitted-character note")
	}
	if n := strings.Count(got, commentSeparator); n != 2 {
		t.Errorf("expected 2 separator lines, found %d", n)
	}
	if !strings.HasSuffix(got, "📌 内容类型: 文本数据") {
		t.Errorf("missing content-type trailer, got tail %q", got[len(got)-60:])
	}
}

func TestCommentText_ValueShorterThanPreview(t *testing.T) {
	full := strings.Repeat("y", 50)
	got := commentText(contentText, "note", full, 1000)

	if strings.Contains(got, "未显示") {
		t.Error("short value should not have an omitted-character note")
	}
	if n := strings.Count(got, commentSeparator); n != 1 {
		t.Errorf("expected 1 separator line, found %d", n)
	}
	if !strings.Contains(got, full) {
		t.Error("preview should hold the whole value")
	}
}

func TestCommentText_TypeTrailers(t *testing.T) {
	tests := []struct {
		kind contentKind
		want string
	}{
		{contentJSON, "📌 内容类型: JSON 数据"},
		{contentXML, "📌 内容类型: XML 数据"},
		{contentBase64, "📌 内容类型: Base64 编码数据"},
		{contentText, "📌 内容类型: 文本数据"},
	}
	for _, tt := range tests {
		got := commentText(tt.kind, "f", "v", 1000)
		if !strings.HasSuffix(got, tt.want) {
			t.Errorf("kind %v: want trailer %q, got tail %q", tt.kind, tt.want, got)
		}
	}
}

func TestOverflowFallback(t *testing.T) {
	if got, want := overflowFallback(strings.Repeat("x", 12)), "[内容过长: 12字符]"; got != want {
		t.Errorf("overflowFallback = %q, want %q", got, want)
	}
}
