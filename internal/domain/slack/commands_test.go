package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *Command
		wantErr string
	}{
		{
			name: "empty text shows help",
			text: "  ",
			want: &Command{Type: CmdHelp},
		},
		{
			name: "add with department",
			text: "add <@U001|olena> Front desk",
			want: &Command{Type: CmdAdd, Raw: "add <@U001|olena> Front desk", Args: []string{"<@U001|olena>", "Front", "desk"}},
		},
		{
			name: "list alias",
			text: "ls",
			want: &Command{Type: CmdList, Raw: "ls"},
		},
		{
			name: "departments",
			text: "departments",
			want: &Command{Type: CmdDepartments, Raw: "departments"},
		},
		{
			name: "notify without options",
			text: "notify",
			want: &Command{Type: CmdNotify, Raw: "notify", Options: &NotifyOptions{}},
		},
		{
			name: "notify with every option",
			text: `notify dept:"Front desk" <@U001|olena> <@U002> #12 from:9.5 to:17:15 email -- Шифт {start}-{end}`,
			want: &Command{
				Type: CmdNotify,
				Raw:  `notify dept:"Front desk" <@U001|olena> <@U002> #12 from:9.5 to:17:15 email -- Шифт {start}-{end}`,
				Options: &NotifyOptions{
					Department:   "Front desk",
					SlackUserIDs: []string{"U001", "U002"},
					EmployeeIDs:  []int64{12},
					Start:        ptr(9.5),
					End:          ptr(17.25),
					SendEmail:    true,
					Message:      "Шифт {start}-{end}",
					HasMessage:   true,
				},
			},
		},
		{
			name: "preview with empty message",
			text: "preview dept:Kitchen --",
			want: &Command{
				Type:    CmdPreview,
				Raw:     "preview dept:Kitchen --",
				Options: &NotifyOptions{Department: "Kitchen", HasMessage: true},
			},
		},
		{
			name: "message keeps dashes and spacing",
			text: "notify -- see you -- tomorrow",
			want: &Command{
				Type:    CmdNotify,
				Raw:     "notify -- see you -- tomorrow",
				Options: &NotifyOptions{Message: "see you -- tomorrow", HasMessage: true},
			},
		},
		{
			name:    "unknown command",
			text:    "schedule",
			wantErr: "unknown command: schedule",
		},
		{
			name:    "unknown option",
			text:    "notify tomorrow",
			wantErr: "unknown option: tomorrow",
		},
		{
			name:    "bad employee id",
			text:    "notify #abc",
			wantErr: "invalid employee id: #abc",
		},
		{
			name:    "bad time",
			text:    "notify from:nine",
			wantErr: `invalid input: invalid time "nine", use HH:MM or hours like 9.5`,
		},
		{
			name:    "empty department",
			text:    "notify dept:",
			wantErr: "department name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.text)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMention(t *testing.T) {
	tests := []struct {
		token  string
		want   string
		wantOK bool
	}{
		{token: "<@U001|olena>", want: "U001", wantOK: true},
		{token: "<@U002>", want: "U002", wantOK: true},
		{token: "@olena"},
		{token: "<@>"},
		{token: "<#C001|general>"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseMention(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotifyOptions_HasSelection(t *testing.T) {
	assert.False(t, (&NotifyOptions{Department: "Kitchen"}).HasSelection())
	assert.True(t, (&NotifyOptions{SlackUserIDs: []string{"U001"}}).HasSelection())
	assert.True(t, (&NotifyOptions{EmployeeIDs: []int64{3}}).HasSelection())
}
