package metrics

import "math"

// MechanicalEnergy is the kinetic plus spring potential energy.
func MechanicalEnergy(mass, stiffness, x, v float64) float64 {
	return 0.5*mass*v*v + 0.5*stiffness*x*x
}

// Energy is the mean mechanical energy over the observed samples.
type Energy struct {
	name        string
	mass        float64
	stiffness   float64
	samples     int
	totalEnergy float64
}

func NewEnergy(mass, stiffness float64) *Energy {
	return &Energy{
		name:      "energy",
		mass:      mass,
		stiffness: stiffness,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(t, x, v float64) {
	e.totalEnergy += MechanicalEnergy(e.mass, e.stiffness, x, v)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyLoss is the fraction of the initial energy dissipated by the last
// sample. Zero for an undamped response, approaching one as it decays.
// A response that gains energy is reported through MaxGain.
type EnergyLoss struct {
	name          string
	mass          float64
	stiffness     float64
	initialEnergy float64
	currentEnergy float64
	maxGain       float64
	samples       int
}

func NewEnergyLoss(mass, stiffness float64) *EnergyLoss {
	return &EnergyLoss{
		name:      "energy_loss",
		mass:      mass,
		stiffness: stiffness,
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(t, x, v float64) {
	energy := MechanicalEnergy(e.mass, e.stiffness, x, v)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		gain := (energy - e.initialEnergy) / e.initialEnergy
		e.maxGain = math.Max(e.maxGain, gain)
	}
}

func (e *EnergyLoss) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return 1 - e.currentEnergy/e.initialEnergy
}

// MaxGain is the largest relative energy increase seen.
func (e *EnergyLoss) MaxGain() float64 {
	return e.maxGain
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxGain = 0
	e.samples = 0
}
