// Package traindat binds train.dat, the ordered-block vehicle physics file:
// acceleration curves, brake and handle behavior, car dimensions, devices and
// motor sound tables.
package traindat

// TrainDat is a bound train.dat file.
type TrainDat struct {
	Version      string       `yaml:"version"`
	Acceleration Acceleration `yaml:"acceleration"`
	Performance  Performance  `yaml:"performance"`
	Delay        Delay        `yaml:"delay"`
	Move         Move         `yaml:"move"`
	Brake        Brake        `yaml:"brake"`
	Pressure     Pressure     `yaml:"pressure"`
	Handle       Handle       `yaml:"handle"`
	Cab          Cab          `yaml:"cab"`
	Car          Car          `yaml:"car"`
	Device       Device       `yaml:"device"`
	MotorP1      Motor        `yaml:"motor_p1"`
	MotorP2      Motor        `yaml:"motor_p2"`
	MotorB1      Motor        `yaml:"motor_b1"`
	MotorB2      Motor        `yaml:"motor_b2"`
}

// Acceleration holds one curve per power notch, in notch order.
type Acceleration struct {
	Notches []AccelerationPoint `yaml:"notches"`
}

// AccelerationPoint parameterizes one notch: a0 up to v1, a1 at v2, then
// decaying with exponent e.
type AccelerationPoint struct {
	A0 float64 `yaml:"a0"`
	A1 float64 `yaml:"a1"`
	V1 float64 `yaml:"v1"`
	V2 float64 `yaml:"v2"`
	E  float64 `yaml:"e"`
}

type Performance struct {
	Deceleration                   float64 `yaml:"deceleration"`
	CoefficientOfStaticFriction    float64 `yaml:"coefficient_of_static_friction"`
	Reserved                       float64 `yaml:"reserved"`
	CoefficientOfRollingResistance float64 `yaml:"coefficient_of_rolling_resistance"`
	AerodynamicDragCoefficient     float64 `yaml:"aerodynamic_drag_coefficient"`
}

type Delay struct {
	PowerUp   float64 `yaml:"power_up"`
	PowerDown float64 `yaml:"power_down"`
	BrakeUp   float64 `yaml:"brake_up"`
	BrakeDown float64 `yaml:"brake_down"`
}

type Move struct {
	JerkPowerUp       float64 `yaml:"jerk_power_up"`
	JerkPowerDown     float64 `yaml:"jerk_power_down"`
	JerkBrakeUp       float64 `yaml:"jerk_brake_up"`
	JerkBrakeDown     float64 `yaml:"jerk_brake_down"`
	BrakeCylinderUp   float64 `yaml:"brake_cylinder_up"`
	BrakeCylinderDown float64 `yaml:"brake_cylinder_down"`
}

type Brake struct {
	Type         BrakeType          `yaml:"type"`
	Control      BrakeControlSystem `yaml:"control_system"`
	ControlSpeed float64            `yaml:"control_speed"`
}

// Pressure values are in kPa.
type Pressure struct {
	BrakeCylinderServiceMaximum   float64 `yaml:"brake_cylinder_service_maximum"`
	BrakeCylinderEmergencyMaximum float64 `yaml:"brake_cylinder_emergency_maximum"`
	MainReservoirMinimum          float64 `yaml:"main_reservoir_minimum"`
	MainReservoirMaximum          float64 `yaml:"main_reservoir_maximum"`
	BrakePipeNormal               float64 `yaml:"brake_pipe_normal"`
}

type Handle struct {
	Type                  HandleType       `yaml:"type"`
	PowerNotches          int              `yaml:"power_notches"`
	BrakeNotches          int              `yaml:"brake_notches"`
	PowerNotchReduceSteps int              `yaml:"power_notch_reduce_steps"`
	EbHandleBehaviour     EbHandleBehavior `yaml:"eb_handle_behaviour"`
	LocoBrakeNotches      int              `yaml:"loco_brake_notches"`
	LocoBrakeType         int              `yaml:"loco_brake_type"`
	DriverPowerNotches    int              `yaml:"driver_power_notches"`
	DriverBrakeNotches    int              `yaml:"driver_brake_notches"`
}

// Cab is the driver's eye position in millimeters relative to the driver car.
type Cab struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
	DriverCar int     `yaml:"driver_car"`
}

type Car struct {
	MotorCarMass          float64 `yaml:"motor_car_mass"`
	NumberOfMotorCars     int     `yaml:"number_of_motor_cars"`
	TrailerCarMass        float64 `yaml:"trailer_car_mass"`
	NumberOfTrailerCars   int     `yaml:"number_of_trailer_cars"`
	LengthOfACar          float64 `yaml:"length_of_a_car"`
	FrontCarIsAMotorCar   bool    `yaml:"front_car_is_a_motor_car"`
	WidthOfACar           float64 `yaml:"width_of_a_car"`
	HeightOfACar          float64 `yaml:"height_of_a_car"`
	CenterOfGravityHeight float64 `yaml:"center_of_gravity_height"`
	ExposedFrontalArea    float64 `yaml:"exposed_frontal_area"`
	UnexposedFrontalArea  float64 `yaml:"unexposed_frontal_area"`
}

// Device selects safety systems and door behavior. Ats, Atc and
// ReAdhesionDevice use -1 for "none" and are kept as plain integers.
type Device struct {
	Ats                    int       `yaml:"ats"`
	Atc                    int       `yaml:"atc"`
	Eb                     bool      `yaml:"eb"`
	ConstSpeed             bool      `yaml:"const_speed"`
	HoldBrake              bool      `yaml:"hold_brake"`
	ReAdhesionDevice       int       `yaml:"re_adhesion_device"`
	LoadCompensatingDevice float64   `yaml:"load_compensating_device"`
	PassAlarm              PassAlarm `yaml:"pass_alarm"`
	DoorOpenMode           DoorMode  `yaml:"door_open_mode"`
	DoorCloseMode          DoorMode  `yaml:"door_close_mode"`
	DoorWidth              float64   `yaml:"door_width"`
	DoorMaxTolerance       float64   `yaml:"door_max_tolerance"`
}

// Motor is a motor sound table sampled every 0.2 km/h.
type Motor struct {
	Entries []MotorEntry `yaml:"entries"`
}

// MotorEntry selects a sound (-1 for silence) with pitch and volume in percent.
type MotorEntry struct {
	SoundIndex int     `yaml:"sound_index"`
	Pitch      float64 `yaml:"pitch"`
	Volume     float64 `yaml:"volume"`
}
