package server

import (
	"net/http"

	"github.com/coder/websocket"
	"pkt.systems/pslog"
)

// EchoPath is the WebSocket echo endpoint path.
const EchoPath = "/ws"

// EchoHandler serves the diagnostic echo endpoint: frames received on
// /ws are written back unchanged, /healthz reports liveness. It gives
// the dialer a first-party endpoint to resolve against.
func EchoHandler(logger pslog.Logger) http.Handler {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.HandleFunc(EchoPath, func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			logger.Warn("websocket accept failed", "err", err, "ip", RealIP(r))
			return
		}
		defer conn.CloseNow()

		ip := RealIP(r)
		logger.Info("echo session started", "ip", ip)
		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					logger.Info("echo session closed", "ip", ip)
				default:
					logger.Warn("echo read failed", "ip", ip, "err", err)
				}
				return
			}
			if err := conn.Write(ctx, typ, data); err != nil {
				logger.Warn("echo write failed", "ip", ip, "err", err)
				return
			}
		}
	})
	return mux
}
