package convert

import (
	"fmt"
	"regexp"
	"strings"
)

// contentKind is the detected shape of an overflowing string value. It
// only picks the display template and the annotation's type line;
// values short enough to store verbatim are never classified.
type contentKind int

const (
	contentText contentKind = iota
	contentJSON
	contentXML
	contentBase64
)

const (
	jsonPreviewLength = 200
	xmlPreviewLength  = 200
	textPreviewLength = 100

	commentSeparator = "----------------------------------------"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// classifyContent guesses the shape of an overflowing value, first
// match wins: JSON before XML before Base64, plain text as fallback.
func classifyContent(s string) contentKind {
	switch {
	case isJSONLike(s):
		return contentJSON
	case isXMLLike(s):
		return contentXML
	case isBase64Like(s):
		return contentBase64
	default:
		return contentText
	}
}

func isJSONLike(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	return (strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}")) ||
		(strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]"))
}

func isXMLLike(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	return strings.HasPrefix(t, "<?xml") ||
		(strings.HasPrefix(t, "<") && strings.HasSuffix(t, ">"))
}

// isBase64Like requires at least 20 characters so short plain words do
// not match: standard alphabet, up to two trailing '=' padding
// characters, length divisible by four. The alphabet alone is not
// enough — a long uniform run like "xxxx…" satisfies it but is prose,
// so the value must also mix at least two character classes, which
// encoded payloads of any real data do.
func isBase64Like(s string) bool {
	if len(s) < 20 || len(s)%4 != 0 {
		return false
	}
	if !base64Pattern.MatchString(s) {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case c == '+' || c == '/':
			symbol = true
		}
	}
	classes := 0
	for _, seen := range []bool{lower, upper, digit, symbol} {
		if seen {
			classes++
		}
	}
	return classes >= 2
}

func (k contentKind) label() string {
	switch k {
	case contentJSON:
		return "JSON 数据"
	case contentXML:
		return "XML 数据"
	case contentBase64:
		return "Base64 编码数据"
	default:
		return "文本数据"
	}
}

// displayText builds the truncated marker string stored in the cell in
// place of an overflowing value. Base64 gets no preview; there is
// nothing readable to show.
func displayText(kind contentKind, field, full string) string {
	runes := []rune(full)
	total := len(runes)
	switch kind {
	case contentJSON:
		return fmt.Sprintf("📊 [JSON数据: %d字符] %s...", total, string(runes[:min(jsonPreviewLength, total)]))
	case contentXML:
		return fmt.Sprintf("📋 [XML数据: %d字符] %s...", total, string(runes[:min(xmlPreviewLength, total)]))
	case contentBase64:
		return fmt.Sprintf("🔒 [Base64数据: %d字符]", total)
	default:
		return fmt.Sprintf("📝 [%s: %d字符] %s...", field, total, string(runes[:min(textPreviewLength, total)]))
	}
}

// commentText builds the annotation body: field and length header
// lines, a framed preview of the value, an omitted-character note when
// the preview is partial, and the detected content type.
func commentText(kind contentKind, field, full string, previewLen int) string {
	runes := []rune(full)
	total := len(runes)

	var b strings.Builder
	fmt.Fprintf(&b, "字段: %s\n", field)
	fmt.Fprintf(&b, "总长度: %d 字符\n", total)
	b.WriteString("预览内容:\n")
	b.WriteString(commentSeparator)
	b.WriteByte('\n')
	b.WriteString(string(runes[:min(previewLen, total)]))
	if total > previewLen {
		b.WriteByte('\n')
		b.WriteString(commentSeparator)
		b.WriteByte('\n')
		fmt.Fprintf(&b, "... [剩余 %d 字符未显示]", total-previewLen)
	}
	fmt.Fprintf(&b, "\n\n📌 内容类型: %s", kind.label())
	return b.String()
}

// overflowFallback is the minimal cell value used when the annotation
// cannot be attached: the length survives even though the content does
// not.
func overflowFallback(full string) string {
	return fmt.Sprintf("[内容过长: %d字符]", len([]rune(full)))
}
