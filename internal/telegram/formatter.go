package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/openplatform/guardian-go/internal/domain"
)

// MaxMessageLen is the hard limit Telegram enforces per message.
const MaxMessageLen = 4096

func FormatDigest(articles []domain.Article) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>News digest</b> (%d new)\n\n", len(articles)))

	for i, a := range articles {
		sb.WriteString(fmt.Sprintf("%d. <a href=\"%s\">%s</a>\n",
			i+1,
			html.EscapeString(a.WebURL),
			html.EscapeString(a.Title),
		))

		var meta []string
		if a.SectionName != "" {
			meta = append(meta, html.EscapeString(a.SectionName))
		}
		if a.Byline != "" {
			meta = append(meta, html.EscapeString(a.Byline))
		}
		if len(meta) > 0 {
			sb.WriteString("   " + strings.Join(meta, " · ") + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func SplitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var messages []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			messages = append(messages, text)
			break
		}

		splitPoint := findSafeSplitPoint(text, maxLen)
		if splitPoint <= 0 || splitPoint > len(text) {
			splitPoint = maxLen
		}

		messages = append(messages, text[:splitPoint])
		text = text[splitPoint:]
	}

	return messages
}

// findSafeSplitPoint prefers whitespace and never splits inside an
// HTML tag.
func findSafeSplitPoint(text string, maxLen int) int {
	for i := maxLen - 1; i > maxLen/2; i-- {
		if i >= len(text) {
			continue
		}
		if isInsideHTMLTag(text, i) {
			continue
		}

		if text[i] == '\n' || text[i] == ' ' {
			return i + 1
		}
	}

	if maxLen < len(text) && isInsideHTMLTag(text, maxLen) {
		for i := maxLen; i < len(text); i++ {
			if text[i] == '>' {
				for j := i + 1; j < len(text) && j < i+50; j++ {
					if text[j] == '\n' || text[j] == ' ' {
						return j + 1
					}
				}
				return i + 1
			}
		}
	}

	for i := maxLen - 1; i > 0; i-- {
		if text[i] == ' ' || text[i] == '\n' {
			return i + 1
		}
	}

	return maxLen
}

func isInsideHTMLTag(text string, pos int) bool {
	if pos >= len(text) || pos < 0 {
		return false
	}
	for i := pos; i >= 0; i-- {
		if text[i] == '>' {
			return false
		}
		if text[i] == '<' {
			return true
		}
	}
	return false
}
