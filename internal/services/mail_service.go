package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"studiointake/internal/config"
)

// Attachment is one binary part of an outbound report.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type MailServiceInterface interface {
	Send(to, subject, htmlBody, textBody string, attachments []Attachment) error
}

type smtpMailService struct {
	cfg config.SMTPConfig
}

func NewSMTPMailService(cfg config.SMTPConfig) MailServiceInterface {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) Send(to, subject, htmlBody, textBody string, attachments []Attachment) error {
	msg := buildMessage(s.cfg.From, to, subject, htmlBody, textBody, attachments)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.Port == 465 {
		// SMTPS (implicit TLS)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return submit(c, auth, s.cfg.From, to, msg)
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else {
		return fmt.Errorf("server does not support STARTTLS")
	}

	return submit(c, auth, s.cfg.From, to, msg)
}

func submit(c *smtp.Client, auth smtp.Auth, from, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
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

// buildMessage assembles a multipart/mixed message: a multipart/alternative
// part with the plain-text fallback and HTML report, then one base64 part
// per attachment.
func buildMessage(from, to, subject, htmlBody, textBody string, attachments []Attachment) []byte {
	now := time.Now()
	mixed := fmt.Sprintf("mixed_%d", now.UnixNano())
	alt := fmt.Sprintf("alt_%d", now.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", from)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", mixed)
	write("\r\n")

	write("--%s\r\n", mixed)
	write("Content-Type: multipart/alternative; boundary=%q\r\n", alt)
	write("\r\n")

	write("--%s\r\n", alt)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", alt)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", alt)

	for _, att := range attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		write("--%s\r\n", mixed)
		write("Content-Type: %s; name=%q\r\n", contentType, att.Filename)
		write("Content-Disposition: attachment; filename=%q\r\n", att.Filename)
		write("Content-Transfer-Encoding: base64\r\n\r\n")
		writeBase64(&msg, att.Data)
		write("\r\n")
	}

	write("--%s--\r\n", mixed)
	return msg.Bytes()
}

// writeBase64 emits the data in RFC 2045 compliant 76-character lines.
func writeBase64(buf *bytes.Buffer, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if len(encoded) > 0 {
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
}
