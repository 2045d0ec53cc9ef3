package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/shift-notify-bot/internal/domain/contract"
	"github.com/diegoclair/shift-notify-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/shift-notify-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	shiftService     contract.ShiftService
	directoryService contract.DirectoryService
	signingSecret    string
	log              *zap.Logger
}

func New(shiftService contract.ShiftService, directoryService contract.DirectoryService, signingSecret string, log *zap.Logger) *SlackHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return &SlackHandler{
		shiftService:     shiftService,
		directoryService: directoryService,
		signingSecret:    signingSecret,
		log:              log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdNotify:
		return h.handleNotify(ctx, cmd, slashCmd)
	case slackcmd.CmdPreview:
		return h.handlePreview(ctx, cmd, slashCmd)
	case slackcmd.CmdAdd:
		return h.handleAddEmployee(ctx, cmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveEmployee(ctx, cmd)
	case slackcmd.CmdList:
		return h.handleListEmployees(ctx, cmd)
	case slackcmd.CmdDepartments:
		return h.handleListDepartments(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// buildRequest turns the typed options into a shift request. The explicit selection
// goes first so the department change only fills an empty one.
func (h *SlackHandler) buildRequest(ctx context.Context, opts *slackcmd.NotifyOptions, requesterID string) (*entity.ShiftRequest, error) {
	req := entity.NewShiftRequest()

	if opts.Start != nil {
		req.Window.Start = *opts.Start
	}
	if opts.End != nil {
		req.Window.End = *opts.End
	}
	if opts.HasMessage {
		req.Message = opts.Message
	}
	req.SendEmail = opts.SendEmail

	if opts.HasSelection() {
		employees, err := h.directoryService.SelectEmployees(ctx, opts.SlackUserIDs, opts.EmployeeIDs)
		if err != nil {
			return nil, err
		}
		req.Employees = employees
	}

	if opts.Department != "" {
		department, err := h.directoryService.FindDepartment(ctx, opts.Department)
		if err != nil {
			return nil, err
		}
		if err := h.shiftService.OnDepartmentChange(ctx, req, department.ID); err != nil {
			return nil, err
		}
	}

	req.RequesterTZ = h.directoryService.RequesterTimezone(ctx, requesterID)

	return req, nil
}

func (h *SlackHandler) handleNotify(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	req, err := h.buildRequest(ctx, cmd.Options, slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	result, err := h.shiftService.Dispatch(ctx, req)
	if err != nil {
		h.log.Error("shift notification failed",
			zap.String("requester", slashCmd.UserID),
			zap.String("command", cmd.Raw),
			zap.Error(err),
		)
		return h.createErrorResponse(err.Error())
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ %s", result.Summary()),
	}
}

func (h *SlackHandler) handlePreview(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	req, err := h.buildRequest(ctx, cmd.Options, slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	preview, err := h.shiftService.Preview(ctx, req)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	mentions := make([]string, 0, len(preview.Recipients))
	for _, user := range preview.Recipients {
		mentions = append(mentions, fmt.Sprintf("<@%s>", user.SlackUserID))
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*Preview* for %d recipients: %s\n", len(preview.Recipients), strings.Join(mentions, ", ")))
	text.WriteString(fmt.Sprintf("Shift: %s - %s\n",
		preview.Bounds.Start.Format("Mon 02 Jan 15:04"),
		preview.Bounds.End.Format("15:04 MST"),
	))
	if req.SendEmail {
		text.WriteString("Email copy: yes\n")
	}
	text.WriteString("> " + preview.Body)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleAddEmployee(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/shift add @user [department]`")
	}

	userID, ok := slackcmd.ParseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/shift add @user [department]`")
	}
	departmentName := strings.Join(cmd.Args[1:], " ")

	employee, err := h.directoryService.AddEmployee(ctx, userID, departmentName)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding employee: %v", err))
	}

	text := fmt.Sprintf("✅ <@%s> was added to the directory as #%d", userID, employee.ID)
	if departmentName != "" {
		text += fmt.Sprintf(" in %s", departmentName)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleRemoveEmployee(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/shift remove @user`")
	}

	userID, ok := slackcmd.ParseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the user: `/shift remove @user`")
	}

	if err := h.directoryService.RemoveEmployee(ctx, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error removing employee: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ <@%s> was removed from the directory.", userID),
	}
}

func (h *SlackHandler) handleListEmployees(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	departmentName := strings.Join(cmd.Args, " ")

	employees, err := h.directoryService.ListEmployees(ctx, departmentName)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error listing employees: %v", err))
	}

	if len(employees) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No employees found. Use `/shift add @user [department]` to add one.",
		}
	}

	var list strings.Builder
	if departmentName != "" {
		list.WriteString(fmt.Sprintf("*Employees in %s:*\n", departmentName))
	} else {
		list.WriteString("*Employees:*\n")
	}
	for _, employee := range employees {
		if employee.HasUser() {
			list.WriteString(fmt.Sprintf("• #%d %s <@%s>\n", employee.ID, employee.Name, employee.User.SlackUserID))
			continue
		}
		list.WriteString(fmt.Sprintf("• #%d %s (no account)\n", employee.ID, employee.Name))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleListDepartments(ctx context.Context) *slack.Msg {
	departments, err := h.directoryService.ListDepartments(ctx)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error listing departments: %v", err))
	}

	if len(departments) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No departments yet. They are created by `/shift add @user department`.",
		}
	}

	var list strings.Builder
	list.WriteString("*Departments:*\n")
	for _, department := range departments {
		list.WriteString(fmt.Sprintf("• %s\n", department.Name))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
