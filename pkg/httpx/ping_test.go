package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/ghuser/stockroom/pkg/httpx"
)

func TestPingHandler(t *testing.T) {
	before := time.Now().UnixMilli()
	w := httptest.NewRecorder()
	httpx.PingHandler()(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	after := time.Now().UnixMilli()

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	re := regexp.MustCompile(`^Pong! (\d+)$`)
	m := re.FindStringSubmatch(body["message"])
	if m == nil {
		t.Fatalf("unexpected message format: %q", body["message"])
	}
	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp not an integer: %v", err)
	}
	if ts < before || ts > after {
		t.Fatalf("timestamp %d not between %d and %d", ts, before, after)
	}
}
