package agent

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventWaypointSelected = "WaypointSelected"
	EventWaypointReached  = "WaypointReached"
	EventTurn             = "Turn"
	EventLogLine          = "LogLine"
)
