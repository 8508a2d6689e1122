// Package host declares the capabilities a simulation exposes to a tank agent.
//
// Everything the agent knows about the world comes through these calls; the
// agent never holds its own copy of the tank state between calls.
package host

// Sensors report the live tank state.
type Sensors interface {
	Position() (x, y float64)
	Heat() float64
}

// Constants are fixed for the lifetime of a match.
type Constants interface {
	// DeathHeat is the heat level at which the tank is destroyed.
	DeathHeat() float64
	// ShootHeat is the heat charged per Fire call.
	ShootHeat() float64
	// Velocity is the distance covered by one Forward call.
	Velocity() float64
}

type Actuators interface {
	// Turn sets the absolute heading, in radians.
	Turn(bearing float64)
	Forward()
	// Aim orients the turret independently of the heading.
	Aim(bearing float64)
	Fire()
}

// Scheduler hands control back to the host until the tank's next tick.
type Scheduler interface {
	Yield()
}

// Diagnostics is best-effort telemetry. Nothing is returned and nothing may fail.
type Diagnostics interface {
	Post(msg string)
	PostFloat(v float64)
}

type Host interface {
	Sensors
	Constants
	Actuators
	Scheduler
	Diagnostics
}
