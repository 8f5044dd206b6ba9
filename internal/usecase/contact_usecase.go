package usecase

import (
	"context"
	"html/template"
	"log"
	"strings"

	"empleos-backend/internal/mailer"
)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactUsecase interface {
	Submit(ctx context.Context, in ContactInput) error
}

type Contact struct {
	mail   mailer.Mailer
	logger *log.Logger
}

func NewContactUsecase(mail mailer.Mailer, logger *log.Logger) *Contact {
	return &Contact{mail: mail, logger: logger}
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<h2>Nuevo mensaje de contacto</h2>
<p><strong>Nombre:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Teléfono:</strong> {{.Phone}}</p>{{end}}
<p><strong>Mensaje:</strong></p>
<p>{{.Message}}</p>
`))

func (u *Contact) Submit(ctx context.Context, in ContactInput) error {
	fields := map[string]string{}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		fields["name"] = "is required"
	}
	if in.Email == "" {
		fields["email"] = "is required"
	} else if !emailPattern.MatchString(in.Email) {
		fields["email"] = "is not a valid email"
	}
	if in.Message == "" {
		fields["message"] = "is required"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}

	var body strings.Builder
	if err := contactTemplate.Execute(&body, in); err != nil {
		return ErrInternal
	}

	msg := mailer.Message{
		Subject: "Nuevo contacto de " + in.Name,
		HTML:    body.String(),
		ReplyTo: in.Email,
	}
	if err := u.mail.Send(ctx, msg); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Contact] send failed err=%v", err)
		}
		return ErrMailFailed
	}
	return nil
}
