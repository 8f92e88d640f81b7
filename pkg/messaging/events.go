package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Directory events
	EventEmployeeCreated = "directory.employee.created"
	EventEmployeeUpdated = "directory.employee.updated"
	EventEmployeeDeleted = "directory.employee.deleted"
	EventClientCreated   = "directory.client.created"
	EventClientUpdated   = "directory.client.updated"
	EventClientDeleted   = "directory.client.deleted"

	// Attendance events
	EventCheckinCreated   = "attendance.checkin.created"
	EventCheckinCompleted = "attendance.checkin.completed"
)

// Exchange names
const (
	ExchangeAttendanceEvents = "attendance.events"
	ExchangeDirectoryEvents  = "directory.events"
)

// Event is the base event structure
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now().UTC(),
		Data:      dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// CheckinCreatedEvent is published when an employee checks in at a client site
type CheckinCreatedEvent struct {
	CheckinID          string    `json:"checkin_id"`
	EmployeeID         string    `json:"employee_id"`
	ClientID           string    `json:"client_id"`
	CheckinTime        time.Time `json:"checkin_time"`
	DistanceFromClient *float64  `json:"distance_from_client,omitempty"`
}

// CheckinCompletedEvent is published when an employee checks out
type CheckinCompletedEvent struct {
	CheckinID    string    `json:"checkin_id"`
	EmployeeID   string    `json:"employee_id"`
	ClientID     string    `json:"client_id"`
	CheckinTime  time.Time `json:"checkin_time"`
	CheckoutTime time.Time `json:"checkout_time"`
}

// EmployeeCreatedEvent is published when a manager adds an employee
type EmployeeCreatedEvent struct {
	EmployeeID string `json:"employee_id"`
	ManagerID  string `json:"manager_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// EmployeeDeletedEvent is published when an employee is removed
type EmployeeDeletedEvent struct {
	EmployeeID string `json:"employee_id"`
}

// ClientCreatedEvent is published when a client site is registered
type ClientCreatedEvent struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

// ClientDeletedEvent is published when a client site is removed
type ClientDeletedEvent struct {
	ClientID string `json:"client_id"`
}
