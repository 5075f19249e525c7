package traindat

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

// BrakeType is the air brake system of the train.
type BrakeType int

const (
	ElectromagneticStraightAirBrake BrakeType = iota
	ElectricCommandBrake
	AutomaticAirBrake
)

var brakeTypes = kvp.NewEnum("brake type",
	kvp.Variant[BrakeType]{Value: ElectromagneticStraightAirBrake, Name: "ElectromagneticStraightAirBrake", Aliases: "straight;ecb-less", Default: true},
	kvp.Variant[BrakeType]{Value: ElectricCommandBrake, Name: "ElectricCommandBrake", Aliases: "ecb"},
	kvp.Variant[BrakeType]{Value: AutomaticAirBrake, Name: "AutomaticAirBrake", Aliases: "automatic"},
)

func (t BrakeType) String() string { return brakeTypes.Name(t) }

func (t BrakeType) MarshalYAML() (any, error) { return t.String(), nil }

// BrakeControlSystem applies to electromagnetic straight air brakes only.
type BrakeControlSystem int

const (
	NoBrakeControl BrakeControlSystem = iota
	ClosingElectromagneticValve
	DelayIncludingControl
)

var brakeControls = kvp.NewEnum("brake control system",
	kvp.Variant[BrakeControlSystem]{Value: NoBrakeControl, Name: "None", Default: true},
	kvp.Variant[BrakeControlSystem]{Value: ClosingElectromagneticValve, Name: "ClosingElectromagneticValve"},
	kvp.Variant[BrakeControlSystem]{Value: DelayIncludingControl, Name: "DelayIncludingControl"},
)

func (c BrakeControlSystem) MarshalYAML() (any, error) { return brakeControls.Name(c), nil }

type HandleType int

const (
	SeparateHandles HandleType = iota
	CombinedHandle
)

var handleTypes = kvp.NewEnum("handle type",
	kvp.Variant[HandleType]{Value: SeparateHandles, Name: "Separate", Default: true},
	kvp.Variant[HandleType]{Value: CombinedHandle, Name: "Combined", Aliases: "onehandle"},
)

func (h HandleType) MarshalYAML() (any, error) { return handleTypes.Name(h), nil }

// EbHandleBehavior is what the emergency brake position does to the other
// controls.
type EbHandleBehavior int

const (
	EbNoAction EbHandleBehavior = iota
	EbPowerNeutral
	EbReverserNeutral
	EbPowerReverserNeutral
)

var ebBehaviors = kvp.NewEnum("eb handle behaviour",
	kvp.Variant[EbHandleBehavior]{Value: EbNoAction, Name: "NoAction", Default: true},
	kvp.Variant[EbHandleBehavior]{Value: EbPowerNeutral, Name: "PowerNeutral"},
	kvp.Variant[EbHandleBehavior]{Value: EbReverserNeutral, Name: "ReverserNeutral"},
	kvp.Variant[EbHandleBehavior]{Value: EbPowerReverserNeutral, Name: "PowerReverserNeutral"},
)

func (b EbHandleBehavior) MarshalYAML() (any, error) { return ebBehaviors.Name(b), nil }

type PassAlarm int

const (
	PassAlarmNone PassAlarm = iota
	PassAlarmSingle
	PassAlarmLooping
)

var passAlarms = kvp.NewEnum("pass alarm",
	kvp.Variant[PassAlarm]{Value: PassAlarmNone, Name: "None", Default: true},
	kvp.Variant[PassAlarm]{Value: PassAlarmSingle, Name: "Single"},
	kvp.Variant[PassAlarm]{Value: PassAlarmLooping, Name: "Looping"},
)

func (p PassAlarm) MarshalYAML() (any, error) { return passAlarms.Name(p), nil }

type DoorMode int

const (
	DoorSemiAutomatic DoorMode = iota
	DoorAutomatic
	DoorManual
)

var doorModes = kvp.NewEnum("door mode",
	kvp.Variant[DoorMode]{Value: DoorSemiAutomatic, Name: "SemiAutomatic", Default: true},
	kvp.Variant[DoorMode]{Value: DoorAutomatic, Name: "Automatic"},
	kvp.Variant[DoorMode]{Value: DoorManual, Name: "Manual"},
)

func (m DoorMode) MarshalYAML() (any, error) { return doorModes.Name(m), nil }
