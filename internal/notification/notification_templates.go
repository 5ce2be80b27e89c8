package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"go-hrm/internal/events"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var mailTemplates = template.Must(template.New("mail").Parse(`
{{define "layout_start"}}<!DOCTYPE html><html><body style="font-family:Arial,sans-serif;color:#222">{{end}}
{{define "layout_end"}}<p>Regards,<br>{{.OrgName}}</p></body></html>{{end}}

{{define "invitation"}}{{template "layout_start"}}
<p>Hello,</p>
<p>You are invited to join {{.OrgName}} as <strong>{{.Event.Designation}}</strong>, starting {{.Event.JoiningDate}}.</p>
<p><a href="{{.InviteURL}}">Accept your invitation</a> to set a password and activate your account.</p>
{{template "layout_end" .}}{{end}}

{{define "offboarding_initiate"}}{{template "layout_start"}}
<p>Hello {{.Event.Name}},</p>
<p>Your offboarding has been initiated. Your last working day is {{.Event.ResignationDate}}.</p>
{{template "layout_end" .}}{{end}}

{{define "leave_request"}}{{template "layout_start"}}
<p>{{.Event.Name}} requested {{.Event.DayCount}} day(s) of {{.LeaveType}} leave
from {{.Event.StartDate}} to {{.Event.EndDate}}.</p>
<p>Reason: {{.Event.Reason}}</p>
{{template "layout_end" .}}{{end}}

{{define "leave_request_response"}}{{template "layout_start"}}
<p>Hello {{.Event.Name}},</p>
<p>Your {{.LeaveType}} leave request for {{.Event.DayCount}} day(s) from {{.Event.StartDate}} to
{{.Event.EndDate}} has been <strong>{{.Event.Status}}</strong>.</p>
{{if .Event.Reason}}<p>Note: {{.Event.Reason}}</p>{{end}}
{{template "layout_end" .}}{{end}}
`))

// Mail is a rendered notification.
type Mail struct {
	To      []string
	Subject string
	HTML    string
}

type Renderer struct {
	orgName string
	appURL  string
}

func NewRenderer(orgName, appURL string) *Renderer {
	return &Renderer{orgName: orgName, appURL: strings.TrimRight(appURL, "/")}
}

func (r *Renderer) Render(event events.NotificationRequestedEvent) (Mail, error) {
	if len(event.Recipients) == 0 {
		return Mail{}, fmt.Errorf("notification %q has no recipients", event.Kind)
	}

	var subject string
	switch event.Kind {
	case events.KindInvitation:
		subject = "Invitation from " + r.orgName
	case events.KindOffboardingInitiate:
		subject = "Offboarding initiated at " + r.orgName
	case events.KindLeaveRequest:
		subject = "Leave Request by " + event.Name
	case events.KindLeaveRequestResponse:
		subject = "Leave Request " + titleCase(event.Status)
	default:
		return Mail{}, fmt.Errorf("unknown notification kind %q", event.Kind)
	}

	data := map[string]any{
		"OrgName":   r.orgName,
		"Event":     event,
		"LeaveType": strings.ReplaceAll(event.LeaveType, "_", " "),
		"InviteURL": r.appURL + "/invite?token=" + event.InviteToken,
	}

	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, event.Kind, data); err != nil {
		return Mail{}, fmt.Errorf("render %s: %w", event.Kind, err)
	}

	return Mail{To: event.Recipients, Subject: subject, HTML: strings.TrimSpace(buf.String())}, nil
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
