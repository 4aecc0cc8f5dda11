package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"gymfit/internal/config"
)

type IMailService interface {
	SendMailToResetPassword(to, token string) error
	// SendContactReply answers a message left through the contact form.
	SendContactReply(to, name, subject, message string) error
}

// SMTPConfig holds SMTP and branding settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS, usually 465
	RequireTLS bool // fail when STARTTLS is not offered

	AppName    string
	AppBaseURL string
}

func SMTPConfigFrom(cfg *config.Config) SMTPConfig {
	return SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		FromName:   cfg.SMTP.FromName,
		UseSSL:     cfg.SMTP.UseSSL,
		RequireTLS: cfg.SMTP.RequireTLS,
		AppName:    cfg.AppName,
		AppBaseURL: cfg.AppBaseURL,
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl, err := template.New("html").Parse(baseHTMLTemplate)
	if err != nil {
		return nil, err
	}
	textTpl, err := template.New("text").Parse(plainTextTemplate)
	if err != nil {
		return nil, err
	}
	return &smtpMailService{cfg: cfg, htmlTpl: htmlTpl, textTpl: textTpl}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Reset your password"

	html, text, err := s.renderEmail(EmailData{
		Title:     subject,
		Greeting:  "Hello,",
		Intro:     "We received a request to reset your password. Use the button below within 30 minutes. If you did not request this, you can ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendContactReply(to, name, subject, message string) error {
	html, text, err := s.renderEmail(EmailData{
		Title:    subject,
		Greeting: fmt.Sprintf("Hi %s,", name),
		Intro:    message,
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

// ------------------- Rendering -------------------

type EmailData struct {
	Title     string
	Greeting  string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#f4f4f5;font-family:Helvetica,Arial,sans-serif;color:#18181b;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="padding:32px 12px;">
    <tr><td align="center">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden;">
        <tr><td style="background:#111827;color:#f97316;padding:20px 28px;font-size:22px;font-weight:bold;">{{.AppName}}</td></tr>
        <tr><td style="padding:28px;">
          <h1 style="margin:0 0 16px;font-size:20px;">{{.Title}}</h1>
          <p style="margin:0 0 12px;">{{.Greeting}}</p>
          <p style="margin:0 0 24px;line-height:1.6;white-space:pre-line;">{{.Intro}}</p>
          {{if .ButtonURL}}
          <a href="{{.ButtonURL}}" style="display:inline-block;background:#f97316;color:#ffffff;text-decoration:none;padding:12px 22px;border-radius:8px;font-weight:bold;">{{.ButtonTxt}}</a>
          <p style="margin:20px 0 0;font-size:12px;color:#71717a;">Or paste this link into your browser:<br>{{.ButtonURL}}</p>
          {{end}}
        </td></tr>
        <tr><td style="padding:16px 28px;font-size:12px;color:#a1a1aa;border-top:1px solid #e4e4e7;">&copy; {{.Year}} {{.AppName}}</td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Greeting}}

{{.Intro}}
{{if .ButtonURL}}
Open this link:
{{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	data.AppName = s.cfg.AppName
	data.Year = time.Now().Year()

	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	msg := s.buildMessage(to, subject, htmlBody, textBody)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("utf-8", name), s.cfg.From)
}
