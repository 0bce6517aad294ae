//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

const (
	ScriptPath = "/checkout/v3.js"

	// DeclinedTransactionID makes the stub answer verification with a failure.
	DeclinedTransactionID = "declined"
)

// StubRoom is one category served by the stub. Price is per night in major units.
type StubRoom struct {
	ID        string
	Name      string
	Price     float64
	Available bool
}

type stubBooking struct {
	ID   string
	Body map[string]any
}

// HotelAPIStub serves the subset of the hotel API the gateway calls.
type HotelAPIStub struct {
	server *httptest.Server

	mu       sync.Mutex
	rooms    []StubRoom
	bookings map[string]stubBooking
	creates  int
}

func NewHotelAPIStub(t *testing.T) *HotelAPIStub {
	s := &HotelAPIStub{}
	s.Reset()

	r := gin.New()
	r.HEAD(ScriptPath, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET(ScriptPath, func(c *gin.Context) { c.String(http.StatusOK, "/* checkout */") })
	r.GET("/room-inventory/available", s.availableRooms)
	r.GET("/room-inventory/check-availability", s.checkAvailability)
	r.POST("/bookings/public", s.createBooking)
	r.GET("/bookings/by-reference/:ref", s.bookingByReference)
	r.POST("/payments/verify", s.verifyPayment)

	s.server = httptest.NewServer(r)
	t.Cleanup(s.server.Close)
	return s
}

func (s *HotelAPIStub) URL() string {
	return s.server.URL
}

// Reset restores the default inventory and forgets every booking.
func (s *HotelAPIStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = []StubRoom{
		{ID: "deluxe", Name: "Deluxe Room", Price: 30500, Available: true},
		{ID: "standard", Name: "Standard Room", Price: 20000, Available: true},
	}
	s.bookings = map[string]stubBooking{}
	s.creates = 0
}

func (s *HotelAPIStub) SetAvailable(roomID string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].Available = available
		}
	}
}

// Creates reports how many reservations were created since the last reset.
func (s *HotelAPIStub) Creates() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates
}

func (s *HotelAPIStub) room(id string) (StubRoom, bool) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return StubRoom{}, false
}

func (s *HotelAPIStub) availableRooms(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make([]gin.H, 0, len(s.rooms))
	for _, r := range s.rooms {
		if !r.Available {
			continue
		}
		data = append(data, gin.H{"id": r.ID, "name": r.Name, "price": r.Price, "available_rooms": 3})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *HotelAPIStub) checkAvailability(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.room(c.Query("room_type_id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "available": ok && r.Available})
}

func (s *HotelAPIStub) createBooking(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	ref, _ := body["transaction_ref"].(string)
	roomID, _ := body["room_id"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.room(roomID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "room not found"})
		return
	}

	s.creates++
	b := stubBooking{ID: "bk-" + ref, Body: body}
	s.bookings[ref] = b

	// Three nights at the nightly rate plus the 2% fee, as the real API prices it.
	base := r.Price * 3
	fee := base * 0.02
	c.JSON(http.StatusCreated, gin.H{
		"booking":         s.bookingJSON(b, r, base+fee),
		"base_total":      base,
		"transaction_fee": fee,
		"total_amount":    base + fee,
	})
}

func (s *HotelAPIStub) bookingByReference(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[c.Param("ref")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}
	roomID, _ := b.Body["room_id"].(string)
	r, _ := s.room(roomID)
	c.JSON(http.StatusOK, gin.H{"booking": s.bookingJSON(b, r, r.Price*3*1.02)})
}

func (s *HotelAPIStub) bookingJSON(b stubBooking, r StubRoom, total float64) gin.H {
	return gin.H{
		"id":              b.ID,
		"transaction_ref": b.Body["transaction_ref"],
		"guest_name":      b.Body["guest_name"],
		"guest_email":     b.Body["guest_email"],
		"guest_phone":     b.Body["guest_phone"],
		"room_id":         r.ID,
		"room_name":       r.Name,
		"check_in":        b.Body["check_in"],
		"check_out":       b.Body["check_out"],
		"guests":          b.Body["guests"],
		"status":          "pending",
		"payment_status":  "pending",
		"total_amount":    total,
	}
}

func (s *HotelAPIStub) verifyPayment(c *gin.Context) {
	var body struct {
		TxRef         string `json:"tx_ref"`
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if body.TransactionID == DeclinedTransactionID {
		c.JSON(http.StatusOK, gin.H{"status": "error", "data": gin.H{"status": "failed", "tx_ref": body.TxRef}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	amount := 0.0
	if b, ok := s.bookings[body.TxRef]; ok {
		roomID, _ := b.Body["room_id"].(string)
		if r, ok := s.room(roomID); ok {
			amount = r.Price * 3 * 1.02
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"status":   "successful",
			"amount":   amount,
			"currency": "NGN",
			"tx_ref":   body.TxRef,
			"id":       body.TransactionID,
		},
	})
}
