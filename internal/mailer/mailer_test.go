// SPDX-License-Identifier: MIT

package mailer_test

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http/httptest"
	"net/mail"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvrank/internal/mailer"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	for _, ok := range []string{"a@b.co", "first.last@mail.example.org", "x_y-z@d-1.io"} {
		require.NoError(t, mailer.ValidateAddress(ok), ok)
	}
	for _, bad := range []string{"", "plain", "a@b", "@b.co", "a b@c.de", "a@b.c d", "<a@b.co>"} {
		require.ErrorIs(t, mailer.ValidateAddress(bad), mailer.ErrInvalidAddress, bad)
	}
}

func TestSMTPSender_Preconditions(t *testing.T) {
	ctx := context.Background()
	att := mailer.CSVAttachment([]byte("a,b\n"))

	err := (&mailer.SMTPSender{User: "u@x.io"}).Send(ctx, "to@x.io", att)
	require.ErrorIs(t, err, mailer.ErrNotConfigured)

	err = (&mailer.SMTPSender{User: "u@x.io", Password: "p"}).Send(ctx, "nope", att)
	require.ErrorIs(t, err, mailer.ErrInvalidAddress)

	err = (&mailer.SMTPSender{Addr: "no-port", User: "u@x.io", Password: "p"}).Send(ctx, "to@x.io", att)
	require.ErrorContains(t, err, "no-port")
}

// smtpSession records what a fake implicit-TLS SMTP server received.
type smtpSession struct {
	auth string
	from string
	rcpt string
	data []byte
}

// tlsListener listens on loopback with a certificate borrowed from httptest
// and returns the client TLS config trusting it.
func tlsListener(t *testing.T) (net.Listener, *tls.Config) {
	t.Helper()
	ts := httptest.NewTLSServer(nil)
	t.Cleanup(ts.Close)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{Certificates: ts.TLS.Certificates})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	pool := x509.NewCertPool()
	pool.AddCert(ts.Certificate())

	return ln, &tls.Config{RootCAs: pool, ServerName: "127.0.0.1"}
}

// fakeSMTP serves exactly one implicit-TLS SMTP session.
func fakeSMTP(t *testing.T) (string, *tls.Config, <-chan smtpSession) {
	t.Helper()
	ln, cfg := tlsListener(t)

	out := make(chan smtpSession, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		tp := textproto.NewConn(conn)
		var s smtpSession
		_ = tp.PrintfLine("220 fake ready")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			verb, arg, _ := strings.Cut(line, " ")
			switch strings.ToUpper(verb) {
			case "EHLO", "HELO":
				_ = tp.PrintfLine("250-fake\r\n250 AUTH PLAIN")
			case "AUTH":
				s.auth = arg
				_ = tp.PrintfLine("235 ok")
			case "MAIL":
				s.from = arg
				_ = tp.PrintfLine("250 ok")
			case "RCPT":
				s.rcpt = arg
				_ = tp.PrintfLine("250 ok")
			case "DATA":
				_ = tp.PrintfLine("354 go ahead")
				s.data, err = tp.ReadDotBytes()
				if err != nil {
					return
				}
				_ = tp.PrintfLine("250 queued")
			case "NOOP", "RSET":
				_ = tp.PrintfLine("250 ok")
			case "QUIT":
				_ = tp.PrintfLine("221 bye")
				out <- s
				return
			default:
				_ = tp.PrintfLine("502 unsupported")
			}
		}
	}()

	return ln.Addr().String(), cfg, out
}

func TestSMTPSender_Send(t *testing.T) {
	addr, cfg, sessions := fakeSMTP(t)
	payload := bytes.Repeat([]byte("Model,Price,Topsis Score,Rank\nA,250,0.3078936404479554,4\n"), 20)

	sender := &mailer.SMTPSender{Addr: addr, User: "me@example.com", Password: "app-pass", TLSConfig: cfg}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sender.Send(ctx, "you@example.org", mailer.CSVAttachment(payload)))

	var s smtpSession
	select {
	case s = <-sessions:
	case <-time.After(5 * time.Second):
		t.Fatal("no SMTP session recorded")
	}

	require.Equal(t, "FROM:<me@example.com>", s.from)
	require.Equal(t, "TO:<you@example.org>", s.rcpt)
	mech, resp, _ := strings.Cut(s.auth, " ")
	require.Equal(t, "PLAIN", mech)
	creds, err := base64.StdEncoding.DecodeString(resp)
	require.NoError(t, err)
	require.Equal(t, "\x00me@example.com\x00app-pass", string(creds))

	msg, err := mail.ReadMessage(bytes.NewReader(s.data))
	require.NoError(t, err)
	require.Equal(t, "TOPSIS Result", msg.Header.Get("Subject"))
	require.Equal(t, "<you@example.org>", msg.Header.Get("To"))

	mt, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/mixed", mt)

	mr := multipart.NewReader(msg.Body, params["boundary"])
	body, err := mr.NextPart()
	require.NoError(t, err)
	text, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Contains(t, string(text), "Your TOPSIS result is attached.")

	att, err := mr.NextPart()
	require.NoError(t, err)
	require.Equal(t, "topsis_result.csv", att.FileName())
	attType, _, err := mime.ParseMediaType(att.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "text/csv", attType)
	require.Equal(t, "base64", strings.ToLower(att.Header.Get("Content-Transfer-Encoding")))
	enc, err := io.ReadAll(att)
	require.NoError(t, err)
	lines := strings.Fields(string(enc))
	for _, line := range lines {
		require.LessOrEqual(t, len(line), 76)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.Join(lines, ""))
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestSMTPSender_CancelWhileServerSilent(t *testing.T) {
	ln, cfg := tlsListener(t)

	handshaken := make(chan struct{})
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if err := conn.(*tls.Conn).Handshake(); err != nil {
			return
		}
		close(handshaken)
		// Never send the 220 banner; drain until the client hangs up.
		_, _ = io.Copy(io.Discard, conn)
	}()

	sender := &mailer.SMTPSender{Addr: ln.Addr().String(), User: "me@example.com", Password: "p", TLSConfig: cfg}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- sender.Send(ctx, "you@example.org", mailer.CSVAttachment([]byte("a,b\n"))) }()

	select {
	case <-handshaken:
	case <-time.After(5 * time.Second):
		t.Fatal("TLS handshake never completed")
	}
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Send still blocked after cancel")
	}
}
