package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"notifier/config"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpSender implements the service.MailSender interface over a plain
// SMTP relay with STARTTLS. The sender address doubles as the SMTP
// username, which is how most transactional relays authenticate.
type smtpSender struct {
	addr       string
	host       string
	username   string
	password   string
	senderName string
	timeout    time.Duration
}

// NewSMTPSender creates a mail sender backed by an SMTP relay. The
// transport settings are validated eagerly so a misconfigured channel
// fails at startup rather than on the first dispatch.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	smtpCfg := cfg.SMTP
	if smtpCfg == nil || smtpCfg.Host == "" || smtpCfg.Username == "" || smtpCfg.Password == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("smtp host, username and password must be set")
	}

	port := smtpCfg.Port
	if port == 0 {
		port = 587
	}

	timeout := smtpCfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &smtpSender{
		addr:       net.JoinHostPort(smtpCfg.Host, strconv.Itoa(port)),
		host:       smtpCfg.Host,
		username:   smtpCfg.Username,
		password:   smtpCfg.Password,
		senderName: smtpCfg.SenderName,
		timeout:    timeout,
	}, nil
}

// Verify dials the relay and completes the greeting without sending
// anything. The context deadline bounds the whole handshake.
func (s *smtpSender) Verify(ctx context.Context) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return errors.Wrap(err, "smtp noop failed")
	}

	return client.Quit()
}

// Send delivers one message through the relay.
func (s *smtpSender) Send(ctx context.Context, message *service.MailMessage) error {
	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return errors.Wrap(err, "smtp authentication failed")
	}

	if err := client.Mail(s.username); err != nil {
		return errors.Wrap(err, "smtp sender rejected")
	}
	if err := client.Rcpt(message.To); err != nil {
		return errors.Wrap(err, "smtp recipient rejected")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data command failed")
	}
	if _, err := writer.Write(s.encode(message)); err != nil {
		return errors.Wrap(err, "failed to write message body")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize message body")
	}

	return client.Quit()
}

// connect dials the relay, upgrades to TLS and returns a ready client.
// The caller owns the client and must Close it.
func (s *smtpSender) connect(ctx context.Context) (*smtp.Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial smtp relay")
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(s.timeout)
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "smtp greeting failed")
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			client.Close()

			return nil, errors.Wrap(err, "smtp starttls failed")
		}
	}

	return client, nil
}

// encode renders the RFC 5322 message. When both bodies are present the
// message is a multipart/alternative with the HTML part last, so capable
// clients prefer it.
func (s *smtpSender) encode(message *service.MailMessage) []byte {
	var builder strings.Builder

	from := s.username
	if s.senderName != "" {
		from = fmt.Sprintf("%s <%s>", s.senderName, s.username)
	}
	to := message.To
	if message.ToName != "" {
		to = fmt.Sprintf("%s <%s>", message.ToName, message.To)
	}

	builder.WriteString("From: " + from + "\r\n")
	builder.WriteString("To: " + to + "\r\n")
	builder.WriteString("Subject: " + message.Subject + "\r\n")
	builder.WriteString("MIME-Version: 1.0\r\n")

	switch {
	case message.HTML != "" && message.Text != "":
		const boundary = "=_notifier_alt_boundary"
		builder.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n\r\n")
		builder.WriteString("--" + boundary + "\r\n")
		builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		builder.WriteString(message.Text + "\r\n")
		builder.WriteString("--" + boundary + "\r\n")
		builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		builder.WriteString(message.HTML + "\r\n")
		builder.WriteString("--" + boundary + "--\r\n")
	case message.HTML != "":
		builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		builder.WriteString(message.HTML + "\r\n")
	default:
		builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		builder.WriteString(message.Text + "\r\n")
	}

	return []byte(builder.String())
}
