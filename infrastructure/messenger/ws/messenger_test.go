package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"

	"clipper-app-api/core/interfaces"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// agentServer simulates the capture agent's message and inject endpoints.
func agentServer(t *testing.T, reply string) (*httptest.Server, *int) {
	t.Helper()
	injects := 0
	mux := http.NewServeMux()
	mux.HandleFunc(messagePath, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		var req interfaces.AgentRequest
		if err := conn.ReadJSON(&req); err != nil {
			t.Errorf("read failed: %v", err)
			return
		}
		if req.Action != "get-content" {
			t.Errorf("action = %q, want get-content", req.Action)
		}
		conn.WriteMessage(websocket.TextMessage, []byte(reply))
	})
	mux.HandleFunc(injectPath, func(w http.ResponseWriter, r *http.Request) {
		injects++
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux), &injects
}

func TestMessenger_Send(t *testing.T) {
	server, _ := agentServer(t, `{"success":true,"data":{"title":"Page"}}`)
	defer server.Close()

	m := NewMessenger(server.URL, nil)

	reply, err := m.Send(context.Background(), interfaces.AgentRequest{Action: "get-content"})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.Unmarshal(reply, &envelope); err != nil {
		t.Fatalf("reply is not JSON: %v", err)
	}
	if !envelope.Success || envelope.Data.Title != "Page" {
		t.Errorf("reply = %s", reply)
	}
}

func TestMessenger_Send_NoListener(t *testing.T) {
	server, _ := agentServer(t, "{}")
	url := server.URL
	server.Close()

	m := NewMessenger(url, nil)

	_, err := m.Send(context.Background(), interfaces.AgentRequest{Action: "get-content"})

	if !interfaces.IsNoReceiver(err) {
		t.Errorf("Send error = %v, want ErrNoReceiver classification", err)
	}
}

func TestMessenger_Inject(t *testing.T) {
	server, injects := agentServer(t, "{}")
	defer server.Close()

	m := NewMessenger(server.URL, nil)

	if err := m.Inject(context.Background()); err != nil {
		t.Fatalf("Inject returned error: %v", err)
	}
	if *injects != 1 {
		t.Errorf("inject endpoint called %d times, want 1", *injects)
	}
}

func TestMessenger_Inject_Unreachable(t *testing.T) {
	server, _ := agentServer(t, "{}")
	url := server.URL
	server.Close()

	m := NewMessenger(url, nil)

	if err := m.Inject(context.Background()); err == nil {
		t.Error("Inject should fail when the agent host is unreachable")
	}
}

func TestMessenger_InvalidAgentURL(t *testing.T) {
	m := NewMessenger("://bad", nil)

	if _, err := m.Send(context.Background(), interfaces.AgentRequest{Action: "get-content"}); err == nil {
		t.Error("Send should fail for an invalid agent URL")
	}
	if err := m.Inject(context.Background()); err == nil {
		t.Error("Inject should fail for an invalid agent URL")
	}
}
