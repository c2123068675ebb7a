package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"quizforge/internal/config"
	"quizforge/internal/domain"
)

// SMTPMailer delivers verification codes over SMTP with STARTTLS.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	tpl  *template.Template
	dial func(network, addr string) (net.Conn, error)
}

const codeEmailTemplate = `<div style="font-family:sans-serif">
  <p>Your {{.Kind}} verification code is:</p>
  <h2>{{.Code}}</h2>
  <p>This code will expire in 10 minutes.</p>
</div>
`

type codeEmailData struct {
	Kind string
	Code string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	return &SMTPMailer{
		cfg:  cfg,
		tpl:  template.Must(template.New("code").Parse(codeEmailTemplate)),
		dial: dialer.Dial,
	}
}

// SendVerificationCode emails a one-time code. codeType selects the subject
// line and wording: "register" or "reset".
func (m *SMTPMailer) SendVerificationCode(to, code string, codeType domain.VerificationType) error {
	subject := "Verify your Email"
	if codeType == domain.VerificationTypeReset {
		subject = "Reset Your Password"
	}

	var body bytes.Buffer
	if err := m.tpl.Execute(&body, codeEmailData{Kind: string(codeType), Code: code}); err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	return m.send(to, subject, body.String())
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", m.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("\r\n")
	write("%s\r\n", htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	conn, err := m.dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(m.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (m *SMTPMailer) formatFromHeader() string {
	name := strings.TrimSpace(m.cfg.FromName)
	if name == "" {
		return m.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, m.cfg.From)
}
