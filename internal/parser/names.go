package parser

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// honorificReplacements 称谓替换表，按序应用（长词在前，避免前缀误替换）
// 这是尽力而为的外观清理，未命中的词原样保留
var honorificReplacements = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)Alfaalila `), "Ms. "},
	{regexp.MustCompile(`(?i)Alfaalil `), "Mr. "},
	{regexp.MustCompile(`(?i)Kokko `), "Kid "},
}

// NormalizeGuestName 规范化客人姓名单元格
// 变换有序：压缩空白 → 去首尾空格 → 称谓替换 → 分隔符 "/" 两侧补空格
func NormalizeGuestName(raw string) string {
	name := whitespaceRun.ReplaceAllString(raw, " ")
	name = strings.TrimSpace(name)

	for _, h := range honorificReplacements {
		name = h.re.ReplaceAllString(name, h.repl)
	}

	name = strings.ReplaceAll(name, "/", " / ")
	return name
}
