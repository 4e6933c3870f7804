package httpx

import (
	"fmt"
	"net/http"
	"time"
)

// PingHandler answers GET /ping with a liveness message carrying the current
// Unix time in milliseconds. Unlike /health it probes nothing — it only
// proves the process is serving requests.
func PingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Pong! %d", time.Now().UnixMilli()),
		})
	}
}
