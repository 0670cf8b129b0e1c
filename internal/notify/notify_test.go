package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"artbook_backend/internal/models"
)

func submittedMessage() Message {
	return Message{
		ApplicationID: "app-1",
		Name:          "Jane Doe",
		Email:         "jane@x.com",
		Notification:  models.ApplicationSubmitted,
	}
}

func TestEmailNotifier_SendsToApplicant(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{From: "noreply@artbook.local", FromName: "Artbook"})

	var (
		gotFrom string
		gotTo   []string
		raw     bytes.Buffer
	)
	n.send = func(m ...*gomail.Message) error {
		return gomail.Send(gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
			gotFrom, gotTo = from, to
			_, err := msg.WriteTo(&raw)
			return err
		}), m...)
	}

	require.NoError(t, n.Notify(context.Background(), submittedMessage()))
	assert.Equal(t, "noreply@artbook.local", gotFrom)
	assert.Equal(t, []string{"jane@x.com"}, gotTo)
	assert.Contains(t, raw.String(), "Subject: Application Submitted!")
	assert.Contains(t, raw.String(), "Hi Jane Doe,")
}

func TestEmailNotifier_RequiresAddress(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{})
	n.send = func(...*gomail.Message) error {
		t.Fatal("send must not be called")
		return nil
	}

	msg := submittedMessage()
	msg.Email = ""
	assert.Error(t, n.Notify(context.Background(), msg))
}

type recorder struct {
	got []Message
	err error
}

func (r *recorder) Notify(_ context.Context, msg Message) error {
	r.got = append(r.got, msg)
	return r.err
}

func TestMulti_NotifiesAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &recorder{err: boom}
	b := &recorder{}

	err := Multi(a, NewLogNotifier(), b).Notify(context.Background(), submittedMessage())

	assert.ErrorIs(t, err, boom)
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
