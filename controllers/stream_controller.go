package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tableside/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Websocket endpoints. Each connection owns one feed subscription and one
// notifier instance; both are torn down when the socket closes, so leaked
// listeners cannot keep firing.
type StreamController struct {
	Orders        *realtime.OrderFeed
	Notifications *realtime.NotificationFeed
}

func NewStreamController(orders *realtime.OrderFeed, notifications *realtime.NotificationFeed) *StreamController {
	return &StreamController{Orders: orders, Notifications: notifications}
}

type wsMessage struct {
	Type string `json:"type"` // snapshot | notification
	Data any    `json:"data"`
}

// watchClose unsubscribes as soon as the peer goes away. Unsubscribe closes
// the snapshot channel, which ends the writer loop.
func watchClose(conn *websocket.Conn, unsubscribe func()) {
	go func() {
		defer unsubscribe()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (sc *StreamController) streamOrders(c *gin.Context, filter realtime.OrderFilter, notifier *realtime.OrderNotifier) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := sc.Orders.Subscribe(filter)
	watchClose(conn, sub.Unsubscribe)
	defer conn.Close()
	defer sub.Unsubscribe()

	for snap := range sub.C {
		if err := conn.WriteJSON(wsMessage{Type: "snapshot", Data: snap}); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
		// exactly-once events derived from the snapshot; the write below is
		// best-effort, the snapshot above already carried the state
		for _, e := range notifier.Observe(snap) {
			if err := conn.WriteJSON(wsMessage{Type: "notification", Data: e}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}
}

// GET /ws/kitchen/:restaurantId: staff stream, notifies on new pending orders
func (sc *StreamController) KitchenStream(c *gin.Context) {
	filter := realtime.OrderFilter{RestaurantID: paramUint(c, "restaurantId")}
	sc.streamOrders(c, filter, realtime.NewStaffNotifier())
}

// GET /ws/table/:restaurantId/:tableId: customer stream, notifies when an
// order becomes ready
func (sc *StreamController) TableStream(c *gin.Context) {
	filter := realtime.OrderFilter{
		RestaurantID: paramUint(c, "restaurantId"),
		TableID:      paramUint(c, "tableId"),
	}
	sc.streamOrders(c, filter, realtime.NewCustomerNotifier())
}

// GET /ws/notifications/:restaurantId: staff service-request notifications
func (sc *StreamController) NotificationStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := sc.Notifications.Subscribe(paramUint(c, "restaurantId"))
	watchClose(conn, sub.Unsubscribe)
	defer conn.Close()
	defer sub.Unsubscribe()

	for snap := range sub.C {
		if err := conn.WriteJSON(wsMessage{Type: "snapshot", Data: snap}); err != nil {
			log.Printf("ws write error: %v", err)
			return
		}
	}
}
