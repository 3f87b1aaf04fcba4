package mail

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"triroars-proposal/pkg/models"
)

// Message is one outbound email: recipients, subject, HTML body and
// attachments. One Send call per logical message; no batching, no retry.
type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []models.Attachment
}

// Client defines the interface for the mail delivery boundary
type Client interface {
	Send(ctx context.Context, msg Message) error
}

type clientImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewClient creates an SMTP-backed mail client
func NewClient(host string, port int, username, password, from string) Client {
	return &clientImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message. The context deadline bounds the whole
// dial+send; on expiry the delivery goroutine is abandoned and the
// context error returned.
func (c *clientImpl) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		att := att
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Content)
				return err
			}),
		}
		if att.Inline {
			// The Content-ID must match the cid: reference inside the
			// HTML body exactly.
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-ID": {"<" + att.ContentID + ">"},
			}))
			m.Embed(att.Filename, settings...)
		} else {
			m.Attach(att.Filename, settings...)
		}
	}

	errc := make(chan error, 1)
	go func() {
		errc <- c.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("error sending mail: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail send aborted: %w", ctx.Err())
	}
}
