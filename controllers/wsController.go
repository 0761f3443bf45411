package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Neeto7/neetocafebackoffice/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cookie auth already ran; cross-origin pages cannot read the cookie.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamChanges upgrades to a websocket and forwards change events so other
// sessions can refetch. History and expense changes are coalesced through
// the debounce window; everything else is forwarded as it happens. The
// subscription is torn down when the client goes away.
func (ctl *Controller) StreamChanges(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := ctl.Hub.Subscribe(realtime.AllTables, realtime.EventAll, 64)
	defer sub.Unsubscribe()

	slow := make(chan realtime.Event, 64)
	debounced := realtime.Debounce(slow, realtime.DebounceWindow)
	defer close(slow)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-sub.C:
			if ev.Table == "order_history" || ev.Table == "expenses" {
				select {
				case slow <- ev:
				default:
				}
				continue
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case ev := <-debounced:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
