package notifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/osteele/liquid"
)

const emailLayoutSource = `<p>{{ body | escape }}</p>`

// slackEntity matches Slack control sequences such as <https://x|label>, <@U1|name>, <#C1> and <!here>
var slackEntity = regexp.MustCompile(`<([^<>|]*)(?:\|([^<>]*))?>`)

// slackUnescaper undoes the only three escapes Slack applies to message text
var slackUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

// LiquidEmailLayout renders the HTML body of the email copy
type LiquidEmailLayout struct {
	tpl *liquid.Template
}

func NewEmailLayout() (*LiquidEmailLayout, error) {
	tpl, err := liquid.NewEngine().ParseString(emailLayoutSource)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email layout: %w", err)
	}
	return &LiquidEmailLayout{tpl: tpl}, nil
}

// Render takes a body in Slack message format and returns it as HTML
func (l *LiquidEmailLayout) Render(body string) (string, error) {
	out, err := l.tpl.RenderString(liquid.Bindings{"body": plainText(body)})
	if err != nil {
		return "", fmt.Errorf("failed to render email layout: %w", err)
	}
	return out, nil
}

// plainText turns Slack markup into readable text so the email layout escapes it exactly once
func plainText(body string) string {
	body = slackEntity.ReplaceAllStringFunc(body, func(entity string) string {
		parts := slackEntity.FindStringSubmatch(entity)
		target, label := parts[1], parts[2]

		switch {
		case strings.HasPrefix(target, "@"), strings.HasPrefix(target, "#"):
			if label != "" {
				return target[:1] + strings.TrimPrefix(label, target[:1])
			}
			return target
		case strings.HasPrefix(target, "!"):
			if label != "" {
				return label
			}
			// <!here>, <!channel>, <!subteam^S1>
			name, _, _ := strings.Cut(target[1:], "^")
			return "@" + name
		case label == "" || label == target:
			return strings.TrimPrefix(target, "mailto:")
		case strings.TrimPrefix(target, "mailto:") == label:
			return label
		default:
			return label + " (" + target + ")"
		}
	})

	return slackUnescaper.Replace(body)
}
