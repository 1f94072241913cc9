package ssao

import "errors"

// Params are the tunable occlusion constants shared by the GPU pass and the
// CPU reference.
type Params struct {
	Radius float32 // hemisphere radius in view-space units
	Bias   float32 // depth bias against self-occlusion acne
}

// DefaultParams returns radius 0.5 and bias 0.025.
func DefaultParams() Params {
	return Params{
		Radius: 0.5,
		Bias:   0.025,
	}
}

// Validate reports parameters that would make the occlusion estimate
// meaningless.
func (p Params) Validate() error {
	var errs []error
	if p.Radius <= 0 {
		errs = append(errs, errors.New("ssao radius must be positive"))
	}
	if p.Bias < 0 {
		errs = append(errs, errors.New("ssao bias must not be negative"))
	}
	return errors.Join(errs...)
}

// SampleSet is the kernel and noise tile used for a whole session.
type SampleSet struct {
	kernel Kernel
	noise  NoiseTile
}

// NewSampleSet builds the 64-sample kernel and the 4×4 noise tile from one
// seeded generator. Build it once at startup and keep it.
func NewSampleSet(seed int64) *SampleSet {
	g := NewGenerator(seed)
	return &SampleSet{
		kernel: g.Kernel(KernelSize),
		noise:  g.NoiseTile(NoiseSize),
	}
}

// Kernel returns the session kernel.
func (s *SampleSet) Kernel() Kernel { return s.kernel }

// Noise returns the session noise tile.
func (s *SampleSet) Noise() NoiseTile { return s.noise }
