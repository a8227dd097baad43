package contact

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/mail"
)

var notificationHTML = template.Must(template.New("contact").Parse(`<h2>New message from your portfolio</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Subject:</b> {{.Subject}}</p>
<p><b>Received:</b> {{.UpTime}}, {{.UpDate}}</p>
<p>{{.Message}}</p>
`))

type NotifySettings struct {
	From    string
	To      string
	Timeout time.Duration
}

// Notifier emails the site owner about new contact submissions. Sends run in the
// background; Wait blocks until every started send has finished.
type Notifier struct {
	sender   mail.Sender
	settings NotifySettings
	wg       sync.WaitGroup
}

func NewNotifier(sender mail.Sender, settings NotifySettings) *Notifier {
	return &Notifier{sender: sender, settings: settings}
}

func (n *Notifier) Notify(ctx context.Context, c Contact) {
	msg, err := n.message(c)
	if err != nil {
		log.Error().Err(err).Str("email", c.Email).Msg("contact: failed to render notification")
		return
	}

	// The request may finish before the send does.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.settings.Timeout)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer cancel()

		if err := n.sender.Send(sendCtx, msg); err != nil {
			log.Error().Err(err).Str("from", c.Email).Msg("contact: owner notification failed")
			return
		}
		log.Info().Str("from", c.Email).Msg("contact: owner notified")
	}()
}

func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) message(c Contact) (mail.Message, error) {
	var html bytes.Buffer
	if err := notificationHTML.Execute(&html, c); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render html body: %w", err)
	}

	subject := "New contact from " + c.Name
	if c.Subject != "" {
		subject += ": " + c.Subject
	}

	text := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\nReceived: %s, %s\n\n%s\n",
		c.Name, c.Email, c.Subject, c.UpTime, c.UpDate, c.Message)

	return mail.Message{
		From:    n.settings.From,
		To:      n.settings.To,
		Subject: subject,
		Text:    text,
		HTML:    html.String(),
	}, nil
}
