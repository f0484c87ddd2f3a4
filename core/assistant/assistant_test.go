package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/trezcool/eduhub/core/assistant"
	testutil "github.com/trezcool/eduhub/tests"
)

type fakeClient struct {
	healthy  bool
	response string
	err      error
	calls    []string
}

func (c *fakeClient) SendMessage(ctx context.Context, message string, chatCtx interface{}) (string, error) {
	c.calls = append(c.calls, message)
	return c.response, c.err
}

func (c *fakeClient) CheckHealth(ctx context.Context) bool { return c.healthy }

func newSession(t *testing.T, client *fakeClient) *assistant.Session {
	t.Helper()
	sess := assistant.NewSession(client, testutil.NewLogger())
	sess.CheckHealth(context.Background())
	return sess
}

func TestSession_SendMessage(t *testing.T) {
	client := &fakeClient{healthy: true, response: "Your next class is Physics."}
	sess := newSession(t, client)

	reply, err := sess.SendMessage(context.Background(), "When is my next class?", nil)
	if err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}
	if reply.Role != assistant.RoleAssistant {
		t.Errorf("Role = %q, want %q", reply.Role, assistant.RoleAssistant)
	}
	if reply.Content != client.response {
		t.Errorf("Content = %q, want %q", reply.Content, client.response)
	}

	msgs := sess.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want user message plus reply", len(msgs))
	}
	if msgs[0].Role != assistant.RoleUser || msgs[0].Content != "When is my next class?" {
		t.Errorf("first message = %+v, want the user message", msgs[0])
	}
	if msgs[0].ID == msgs[1].ID || msgs[0].ID == "" {
		t.Errorf("message IDs = %q, %q, want distinct non-empty IDs", msgs[0].ID, msgs[1].ID)
	}
}

func TestSession_SendMessage_unavailable(t *testing.T) {
	sess := newSession(t, &fakeClient{healthy: false})

	if _, err := sess.SendMessage(context.Background(), "hello", nil); err != assistant.ErrUnavailable {
		t.Errorf("error = %v, want %v", err, assistant.ErrUnavailable)
	}
	if len(sess.Messages()) != 0 {
		t.Errorf("messages = %d, want none recorded", len(sess.Messages()))
	}
}

func TestSession_SendMessage_clientError(t *testing.T) {
	client := &fakeClient{healthy: true, err: errors.New("connection refused")}
	sess := newSession(t, client)

	reply, err := sess.SendMessage(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}
	if !strings.HasPrefix(reply.Content, "Error: ") {
		t.Errorf("Content = %q, want an error chat message", reply.Content)
	}
	if len(sess.Messages()) != 2 {
		t.Errorf("messages = %d, want the exchange recorded", len(sess.Messages()))
	}
}

func TestSession_RetryLast(t *testing.T) {
	client := &fakeClient{healthy: true, err: errors.New("boom")}
	sess := newSession(t, client)

	if _, err := sess.SendMessage(context.Background(), "summarize my grades", nil); err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}

	client.err = nil
	client.response = "You are averaging an A-."
	reply, err := sess.RetryLast(context.Background())
	if err != nil {
		t.Fatalf("RetryLast() failed: %v", err)
	}
	if reply.Content != client.response {
		t.Errorf("Content = %q, want %q", reply.Content, client.response)
	}
	if got := client.calls; len(got) != 2 || got[1] != "summarize my grades" {
		t.Errorf("client calls = %v, want the user message re-sent", got)
	}

	// the failed reply is dropped, the retried exchange remains
	msgs := sess.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[2].Content != client.response {
		t.Errorf("last message = %q, want the fresh reply", msgs[2].Content)
	}
}

func TestSession_RetryLast_empty(t *testing.T) {
	sess := newSession(t, &fakeClient{healthy: true})

	if _, err := sess.RetryLast(context.Background()); err != assistant.ErrNothingSent {
		t.Errorf("error = %v, want %v", err, assistant.ErrNothingSent)
	}
}

func TestSession_ClearAndDelete(t *testing.T) {
	client := &fakeClient{healthy: true, response: "ok"}
	sess := newSession(t, client)

	if _, err := sess.SendMessage(context.Background(), "one", nil); err != nil {
		t.Fatalf("SendMessage() failed: %v", err)
	}
	msgs := sess.Messages()

	sess.Delete(msgs[0].ID)
	if got := sess.Messages(); len(got) != 1 || got[0].ID != msgs[1].ID {
		t.Errorf("after Delete messages = %v, want only the reply", got)
	}

	sess.Clear()
	if got := sess.Messages(); len(got) != 0 {
		t.Errorf("after Clear messages = %d, want 0", len(got))
	}
}

func TestSession_CheckHealth(t *testing.T) {
	client := &fakeClient{healthy: true}
	sess := assistant.NewSession(client, testutil.NewLogger())

	if sess.Available() {
		t.Error("Available() = true before any health check")
	}
	if !sess.CheckHealth(context.Background()) || !sess.Available() {
		t.Error("healthy client, want Available() = true")
	}

	client.healthy = false
	if sess.CheckHealth(context.Background()) || sess.Available() {
		t.Error("unhealthy client, want Available() = false")
	}
}
