package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a command handler to a fake backend API and a Discord
// session whose outbound HTTP is intercepted and recorded
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	edits []*discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: NewAPIClient(server.URL, "test-api-key"),
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{RoundTripFunc: ctx.recordInteraction}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)

	return ctx
}

// recordInteraction answers every Discord API call with 200 and captures
// response edits so tests can assert on what the bot would have shown
func (ctx *TestContext) recordInteraction(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodPatch && req.Body != nil {
		var edit discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
			ctx.mu.Lock()
			ctx.edits = append(ctx.edits, &edit)
			ctx.mu.Unlock()
		}
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEmbed returns the embed from the most recent response edit, or nil
func (ctx *TestContext) LastEmbed() *discordgo.MessageEmbed {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	for i := len(ctx.edits) - 1; i >= 0; i-- {
		if ctx.edits[i].Embeds != nil && len(*ctx.edits[i].Embeds) > 0 {
			return (*ctx.edits[i].Embeds)[0]
		}
	}
	return nil
}

// LastContent returns the text content of the most recent response edit
func (ctx *TestContext) LastContent() string {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	for i := len(ctx.edits) - 1; i >= 0; i-- {
		if ctx.edits[i].Content != nil {
			return *ctx.edits[i].Content
		}
	}
	return ""
}

// writeJSON is the backend-side helper for stub API handlers
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
