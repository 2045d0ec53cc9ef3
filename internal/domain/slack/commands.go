package slack

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/diegoclair/shift-notify-bot/internal/domain"
)

type CommandType string

const (
	CmdNotify      CommandType = "notify"
	CmdPreview     CommandType = "preview"
	CmdAdd         CommandType = "add"
	CmdRemove      CommandType = "remove"
	CmdList        CommandType = "list"
	CmdDepartments CommandType = "departments"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string

	// Options is set for notify and preview
	Options *NotifyOptions
}

// NotifyOptions are the request fields typed after /shift notify. Nil times keep
// the defaults.
type NotifyOptions struct {
	Department   string
	SlackUserIDs []string
	EmployeeIDs  []int64
	Start        *float64
	End          *float64
	SendEmail    bool
	Message      string
	HasMessage   bool
}

// HasSelection reports whether employees were picked explicitly
func (o *NotifyOptions) HasSelection() bool {
	return len(o.SlackUserIDs) > 0 || len(o.EmployeeIDs) > 0
}

const messageSeparator = "--"

func ParseCommand(text string) (*Command, error) {
	text = strings.TrimSpace(text)

	head, rest := text, ""
	if idx := strings.IndexFunc(text, unicode.IsSpace); idx >= 0 {
		head, rest = text[:idx], text[idx+1:]
	}
	if head == "" {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(head) {
	case "notify", "send":
		cmd.Type = CmdNotify
	case "preview":
		cmd.Type = CmdPreview
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "departments", "depts":
		cmd.Type = CmdDepartments
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", head)
	}

	if cmd.Type == CmdNotify || cmd.Type == CmdPreview {
		opts, err := parseNotifyOptions(rest)
		if err != nil {
			return nil, err
		}
		cmd.Options = opts
		return cmd, nil
	}

	cmd.Args = splitArgs(rest)
	return cmd, nil
}

func parseNotifyOptions(text string) (*NotifyOptions, error) {
	opts := &NotifyOptions{}

	optionText, message, found := cutMessage(text)
	if found {
		opts.Message = message
		opts.HasMessage = true
	}

	for _, token := range splitArgs(optionText) {
		key, value, hasValue := strings.Cut(token, ":")
		key = strings.ToLower(key)

		switch {
		case strings.HasPrefix(token, "<@"):
			userID, ok := ParseMention(token)
			if !ok {
				return nil, fmt.Errorf("invalid user mention: %s", token)
			}
			opts.SlackUserIDs = append(opts.SlackUserIDs, userID)

		case strings.HasPrefix(token, "#"):
			id, err := strconv.ParseInt(token[1:], 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid employee id: %s", token)
			}
			opts.EmployeeIDs = append(opts.EmployeeIDs, id)

		case strings.EqualFold(token, "email"):
			opts.SendEmail = true

		case hasValue && (key == "dept" || key == "department"):
			if strings.TrimSpace(value) == "" {
				return nil, fmt.Errorf("department name is empty")
			}
			opts.Department = strings.TrimSpace(value)

		case hasValue && key == "from":
			hours, err := domain.ParseHours(value)
			if err != nil {
				return nil, err
			}
			opts.Start = &hours

		case hasValue && key == "to":
			hours, err := domain.ParseHours(value)
			if err != nil {
				return nil, err
			}
			opts.End = &hours

		default:
			return nil, fmt.Errorf("unknown option: %s", token)
		}
	}

	return opts, nil
}

// cutMessage splits off everything after a standalone "--" token
func cutMessage(text string) (options, message string, found bool) {
	padded := " " + text + " "
	idx := strings.Index(padded, " "+messageSeparator+" ")
	if idx < 0 {
		return text, "", false
	}

	options = padded[:idx]
	message = padded[idx+len(messageSeparator)+2:]
	return strings.TrimSpace(options), strings.TrimSpace(message), true
}

// splitArgs splits on whitespace, keeping double-quoted parts together
func splitArgs(text string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range text {
		switch {
		case r == '"' || r == '“' || r == '”':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}

	return args
}

// ParseMention extracts the user ID from an escaped Slack mention like <@U123|name>
func ParseMention(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(token, "<@"), ">")
	userID, _, _ = strings.Cut(userID, "|")
	if userID == "" {
		return "", false
	}
	return userID, true
}

func GetHelpText() string {
	return `*Available Commands:*

*Notify:*
• ` + "`/shift notify [options] [-- message]`" + ` - Tell the selected employees they are on shift tomorrow
• ` + "`/shift preview [options] [-- message]`" + ` - Show what would be sent, without sending it

*Options:*
• ` + "`dept:NAME`" + ` - Select everyone with an account in the department (quotes for names with spaces)
• ` + "`@user`" + ` or ` + "`#ID`" + ` - Select employees explicitly (a department does not override them)
• ` + "`from:9.5`" + ` / ` + "`to:18:00`" + ` - Shift window, default 09:00-18:00
• ` + "`email`" + ` - Also send the message by email to those with an address
• ` + "`-- text`" + ` - Message text, ` + "`{start}`" + ` and ` + "`{end}`" + ` are replaced with the shift times

*Directory:*
• ` + "`/shift add @user [department]`" + ` - Add a Slack user as an employee
• ` + "`/shift remove @user`" + ` - Remove an employee
• ` + "`/shift list [department]`" + ` - List employees
• ` + "`/shift departments`" + ` - List departments`
}
