package traindat

import "github.com/BVE-Reborn/bve-reborn-sub001/kvp"

// Every train.dat field is positional; these keep the tables readable.
func number[R any](key string, ptr func(*R) *float64, def float64) kvp.Field[R] {
	return kvp.Scalar(key, kvp.LooseFloat64, ptr, kvp.Bare(), kvp.Default(def))
}

func integer[R any](key string, ptr func(*R) *int, def int) kvp.Field[R] {
	return kvp.Scalar(key, kvp.LooseInt, ptr, kvp.Bare(), kvp.Default(def))
}

func flag[R any](key string, ptr func(*R) *bool) kvp.Field[R] {
	return kvp.Scalar(key, kvp.Bool, ptr, kvp.Bare(), kvp.Default(false))
}

func choice[R any, T ~int](key string, e *kvp.Enum[T], ptr func(*R) *T) kvp.Field[R] {
	return kvp.Scalar[R, T](key, e, ptr, kvp.Bare(), kvp.Default(e.Default()))
}

var accelerationPoint = kvp.NewComposite(',',
	kvp.Component(kvp.LooseFloat64, func(p *AccelerationPoint) *float64 { return &p.A0 }, 0),
	kvp.Component(kvp.LooseFloat64, func(p *AccelerationPoint) *float64 { return &p.A1 }, 0),
	kvp.Component(kvp.LooseFloat64, func(p *AccelerationPoint) *float64 { return &p.V1 }, 0),
	kvp.Component(kvp.LooseFloat64, func(p *AccelerationPoint) *float64 { return &p.V2 }, 0),
	kvp.Component(kvp.LooseFloat64, func(p *AccelerationPoint) *float64 { return &p.E }, 1),
)

var motorEntry = kvp.NewComposite(',',
	kvp.Component(kvp.LooseInt, func(m *MotorEntry) *int { return &m.SoundIndex }, -1),
	kvp.Component(kvp.LooseFloat64, func(m *MotorEntry) *float64 { return &m.Pitch }, 100),
	kvp.Component(kvp.LooseFloat64, func(m *MotorEntry) *float64 { return &m.Volume }, 128),
)

func motor(name string, ptr func(*TrainDat) *Motor) kvp.SectionBinding[TrainDat] {
	return kvp.Single(kvp.NewRecord(name,
		kvp.Variadic("entry", motorEntry, func(m *Motor) *[]MotorEntry { return &m.Entries }, kvp.Bare()),
	), ptr)
}

// Schema is the train.dat file schema.
var Schema = kvp.NewFile(kvp.OrderedDialect,
	kvp.Single(kvp.NewRecord("acceleration",
		kvp.Variadic("notch", accelerationPoint, func(a *Acceleration) *[]AccelerationPoint { return &a.Notches }, kvp.Bare()),
	).Alias("加速"), func(t *TrainDat) *Acceleration { return &t.Acceleration }),

	kvp.Single(kvp.NewRecord("performance",
		number("deceleration", func(p *Performance) *float64 { return &p.Deceleration }, 1),
		number("coefficientofstaticfriction", func(p *Performance) *float64 { return &p.CoefficientOfStaticFriction }, 0.35),
		number("reserved", func(p *Performance) *float64 { return &p.Reserved }, 0),
		number("coefficientofrollingresistance", func(p *Performance) *float64 { return &p.CoefficientOfRollingResistance }, 0.0025),
		number("aerodynamicdragcoefficient", func(p *Performance) *float64 { return &p.AerodynamicDragCoefficient }, 1.1),
	).Alias("性能"), func(t *TrainDat) *Performance { return &t.Performance }),

	kvp.Single(kvp.NewRecord("delay",
		number("delaypowerup", func(d *Delay) *float64 { return &d.PowerUp }, 0),
		number("delaypowerdown", func(d *Delay) *float64 { return &d.PowerDown }, 0),
		number("delaybrakeup", func(d *Delay) *float64 { return &d.BrakeUp }, 0),
		number("delaybrakedown", func(d *Delay) *float64 { return &d.BrakeDown }, 0),
	).Alias("遅延"), func(t *TrainDat) *Delay { return &t.Delay }),

	kvp.Single(kvp.NewRecord("move",
		number("jerkpowerup", func(m *Move) *float64 { return &m.JerkPowerUp }, 1000),
		number("jerkpowerdown", func(m *Move) *float64 { return &m.JerkPowerDown }, 1000),
		number("jerkbrakeup", func(m *Move) *float64 { return &m.JerkBrakeUp }, 1000),
		number("jerkbrakedown", func(m *Move) *float64 { return &m.JerkBrakeDown }, 1000),
		number("brakecylinderup", func(m *Move) *float64 { return &m.BrakeCylinderUp }, 300),
		number("brakecylinderdown", func(m *Move) *float64 { return &m.BrakeCylinderDown }, 200),
	).Alias("移動"), func(t *TrainDat) *Move { return &t.Move }),

	kvp.Single(kvp.NewRecord("brake",
		choice("braketype", brakeTypes, func(b *Brake) *BrakeType { return &b.Type }),
		choice("brakecontrolsystem", brakeControls, func(b *Brake) *BrakeControlSystem { return &b.Control }),
		number("brakecontrolspeed", func(b *Brake) *float64 { return &b.ControlSpeed }, 0),
	).Alias("ブレーキ"), func(t *TrainDat) *Brake { return &t.Brake }),

	kvp.Single(kvp.NewRecord("pressure",
		number("brakecylinderservicemaximumpressure", func(p *Pressure) *float64 { return &p.BrakeCylinderServiceMaximum }, 480),
		number("brakecylinderemergencymaximumpressure", func(p *Pressure) *float64 { return &p.BrakeCylinderEmergencyMaximum }, 480),
		number("mainreservoirminimumpressure", func(p *Pressure) *float64 { return &p.MainReservoirMinimum }, 690),
		number("mainreservoirmaximumpressure", func(p *Pressure) *float64 { return &p.MainReservoirMaximum }, 780),
		number("brakepipenormalpressure", func(p *Pressure) *float64 { return &p.BrakePipeNormal }, 490),
	).Alias("圧力"), func(t *TrainDat) *Pressure { return &t.Pressure }),

	kvp.Single(kvp.NewRecord("handle",
		choice("handletype", handleTypes, func(h *Handle) *HandleType { return &h.Type }),
		integer("powernotches", func(h *Handle) *int { return &h.PowerNotches }, 8),
		integer("brakenotches", func(h *Handle) *int { return &h.BrakeNotches }, 8),
		integer("powernotchreducesteps", func(h *Handle) *int { return &h.PowerNotchReduceSteps }, 0),
		choice("ebhandlebehaviour", ebBehaviors, func(h *Handle) *EbHandleBehavior { return &h.EbHandleBehaviour }),
		integer("locobrakenotches", func(h *Handle) *int { return &h.LocoBrakeNotches }, 0),
		integer("locobraketype", func(h *Handle) *int { return &h.LocoBrakeType }, 0),
		integer("driverpowernotches", func(h *Handle) *int { return &h.DriverPowerNotches }, 0),
		integer("driverbrakenotches", func(h *Handle) *int { return &h.DriverBrakeNotches }, 0),
	).Alias("ハンドル"), func(t *TrainDat) *Handle { return &t.Handle }),

	kvp.Single(kvp.NewRecord("cab",
		number("x", func(c *Cab) *float64 { return &c.X }, 0),
		number("y", func(c *Cab) *float64 { return &c.Y }, 0),
		number("z", func(c *Cab) *float64 { return &c.Z }, 0),
		integer("drivercar", func(c *Cab) *int { return &c.DriverCar }, 0),
	).Alias("cockpit", "運転台"), func(t *TrainDat) *Cab { return &t.Cab }),

	kvp.Single(kvp.NewRecord("car",
		number("motorcarmass", func(c *Car) *float64 { return &c.MotorCarMass }, 40),
		integer("numberofmotorcars", func(c *Car) *int { return &c.NumberOfMotorCars }, 1),
		number("trailercarmass", func(c *Car) *float64 { return &c.TrailerCarMass }, 40),
		integer("numberoftrailercars", func(c *Car) *int { return &c.NumberOfTrailerCars }, 1),
		number("lengthofacar", func(c *Car) *float64 { return &c.LengthOfACar }, 20),
		flag("frontcarisamotorcar", func(c *Car) *bool { return &c.FrontCarIsAMotorCar }),
		number("widthofacar", func(c *Car) *float64 { return &c.WidthOfACar }, 2.6),
		number("heightofacar", func(c *Car) *float64 { return &c.HeightOfACar }, 3.6),
		number("centerofgravityheight", func(c *Car) *float64 { return &c.CenterOfGravityHeight }, 1.6),
		number("exposedfrontalarea", func(c *Car) *float64 { return &c.ExposedFrontalArea }, 5),
		number("unexposedfrontalarea", func(c *Car) *float64 { return &c.UnexposedFrontalArea }, 1.6),
	).Alias("車両"), func(t *TrainDat) *Car { return &t.Car }),

	kvp.Single(kvp.NewRecord("device",
		integer("ats", func(d *Device) *int { return &d.Ats }, -1),
		integer("atc", func(d *Device) *int { return &d.Atc }, 0),
		flag("eb", func(d *Device) *bool { return &d.Eb }),
		flag("constspeed", func(d *Device) *bool { return &d.ConstSpeed }),
		flag("holdbrake", func(d *Device) *bool { return &d.HoldBrake }),
		integer("readhesiondevice", func(d *Device) *int { return &d.ReAdhesionDevice }, -1),
		number("loadcompensatingdevice", func(d *Device) *float64 { return &d.LoadCompensatingDevice }, 0),
		choice("passalarm", passAlarms, func(d *Device) *PassAlarm { return &d.PassAlarm }),
		choice("dooropenmode", doorModes, func(d *Device) *DoorMode { return &d.DoorOpenMode }),
		choice("doorclosemode", doorModes, func(d *Device) *DoorMode { return &d.DoorCloseMode }),
		number("doorwidth", func(d *Device) *float64 { return &d.DoorWidth }, 1000),
		number("doormaxtolerance", func(d *Device) *float64 { return &d.DoorMaxTolerance }, 0),
	).Alias("装置"), func(t *TrainDat) *Device { return &t.Device }),

	motor("motor_p1", func(t *TrainDat) *Motor { return &t.MotorP1 }),
	motor("motor_p2", func(t *TrainDat) *Motor { return &t.MotorP2 }),
	motor("motor_b1", func(t *TrainDat) *Motor { return &t.MotorB1 }),
	motor("motor_b2", func(t *TrainDat) *Motor { return &t.MotorB2 }),
).WithVersion(func(t *TrainDat) *string { return &t.Version })

// Parse binds a train.dat file. It never fails; problems are reported in the
// returned diagnostics and the affected fields keep their defaults.
func Parse(text string) (*TrainDat, kvp.Diagnostics) {
	t, diags := Schema.Parse(text)
	return &t, diags
}

// Defaults returns a train.dat with every field at its default.
func Defaults() *TrainDat {
	t, _ := Schema.Parse("")
	return &t
}

// Marshal writes t back in train.dat syntax.
func Marshal(t *TrainDat) string {
	return Schema.Marshal(t)
}
