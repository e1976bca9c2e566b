// SPDX-License-Identifier: MIT

// Package mailer delivers result CSVs by email over SMTP with implicit TLS
// (port 465), authenticating with an account address and app password.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"time"

	"github.com/wneessen/go-mail"
)

// Defaults for a Gmail account.
const (
	DefaultAddr = "smtp.gmail.com:465"

	defaultSubject  = "TOPSIS Result"
	defaultBody     = "Your TOPSIS result is attached."
	defaultFilename = "topsis_result.csv"
	dialTimeout     = 15 * time.Second

	// sessionTimeout bounds one SMTP session when ctx carries no earlier deadline.
	sessionTimeout = time.Minute
)

var (
	// ErrInvalidAddress reports a recipient that is not a plain mailbox address.
	ErrInvalidAddress = errors.New("mailer: invalid email format")

	// ErrNotConfigured reports missing sender credentials.
	ErrNotConfigured = errors.New("mailer: sender credentials missing")
)

var addressPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateAddress accepts name@domain.tld style addresses only.
func ValidateAddress(addr string) error {
	if !addressPattern.MatchString(addr) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	return nil
}

// Attachment is one file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Sender delivers one message with an attachment to one recipient.
type Sender interface {
	Send(ctx context.Context, to string, att Attachment) error
}

// SMTPSender sends through an implicit-TLS SMTP server with PLAIN auth.
type SMTPSender struct {
	Addr     string // host:port, DefaultAddr when empty
	User     string // also the From address
	Password string

	// TLSConfig overrides the client TLS settings; nil verifies against Addr's host.
	TLSConfig *tls.Config
}

// Send delivers att to one recipient. Cancelling ctx aborts the session at
// any point: the connection is closed and ctx's error is returned.
func (s *SMTPSender) Send(ctx context.Context, to string, att Attachment) error {
	if s.User == "" || s.Password == "" {
		return ErrNotConfigured
	}
	if err := ValidateAddress(to); err != nil {
		return err
	}

	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("mailer: address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("mailer: address %q: invalid port", addr)
	}
	cfg := s.TLSConfig
	if cfg == nil {
		cfg = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	}

	msg, err := newMessage(s.User, to, att)
	if err != nil {
		return err
	}

	// The dial hook owns the connection so ctx can reach it after the dial.
	var (
		conn net.Conn
		stop func() bool
	)
	dial := func(dctx context.Context, network, address string) (net.Conn, error) {
		d := &tls.Dialer{NetDialer: &net.Dialer{Timeout: dialTimeout}, Config: cfg}
		c, err := d.DialContext(dctx, network, address)
		if err != nil {
			return nil, err
		}
		_ = c.SetDeadline(sessionDeadline(ctx))
		conn = c
		stop = context.AfterFunc(ctx, func() { _ = c.Close() })

		return c, nil
	}
	defer func() {
		if stop != nil {
			stop()
		}
		if conn != nil {
			_ = conn.Close()
		}
	}()

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithDialContextFunc(dial),
		mail.WithTLSPolicy(mail.NoTLS), // TLS is established by dial
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.User),
		mail.WithPassword(s.Password),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("mailer: send: %w", ctxErr)
		}
		return fmt.Errorf("mailer: send: %w", err)
	}

	return nil
}

// sessionDeadline is the earlier of ctx's deadline and now+sessionTimeout.
func sessionDeadline(ctx context.Context) time.Time {
	dl := time.Now().Add(sessionTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(dl) {
		return d
	}

	return dl
}

// CSVAttachment wraps a result CSV with the default filename.
func CSVAttachment(data []byte) Attachment {
	return Attachment{Filename: defaultFilename, ContentType: "text/csv", Data: data}
}

// newMessage builds the result mail: a text/plain body plus the attachment.
func newMessage(from, to string, att Attachment) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("mailer: from: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	m.Subject(defaultSubject)
	m.SetBodyString(mail.TypeTextPlain, defaultBody)
	err := m.AttachReader(att.Filename, bytes.NewReader(att.Data),
		mail.WithFileContentType(mail.ContentType(att.ContentType)))
	if err != nil {
		return nil, fmt.Errorf("mailer: attach: %w", err)
	}

	return m, nil
}
