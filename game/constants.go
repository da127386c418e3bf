package game

const (
	DefaultWalkSpeed = 4.0
	DefaultRunSpeed  = 7.0
	DefaultGravity   = 24.0
	DefaultJumpSpeed = 8.5

	PlayerRadius = 0.35
	PlayerHeight = 1.8
	// StepHeight is the tallest ledge the capsule controller climbs
	// without a jump.
	StepHeight = 0.3

	DefaultEyeHeight = 1.3

	DefaultPitchClamp   = 75.0
	MaxPitchClamp       = 89.0
	DefaultSensitivity  = 0.1
	DefaultMaxStepDelta = 0.05

	// GroundProbeAbove and GroundProbeDepth bound the downward ground ray:
	// it starts slightly above the feet and ends below any reachable floor.
	GroundProbeAbove = 0.5
	GroundProbeDepth = 100.0

	InteractDistance = 2.3

	CorridorLength = 30.0
	CorridorWidth  = 3.0
	CorridorHeight = 3.0

	DoorWidth     = 1.2
	DoorHeight    = 2.4
	DoorThickness = 0.08
	DoorSwingTime = 1.2

	DefaultLampCount = 6
)
