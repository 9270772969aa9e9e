package srs

// Params defines all configurable parameters for the spaced-repetition
// algorithm. The defaults reproduce the classic SM-2 constants.
type Params struct {
	// Quality score bounds, inclusive.
	MinQuality int
	MaxQuality int

	// Scores at or above PassThreshold count as a successful recall.
	PassThreshold int

	// Fixed intervals (in days) for the first and second successful
	// repetitions; later repetitions grow multiplicatively by ease factor.
	FirstInterval  float64
	SecondInterval float64

	// Ease factor limits and starting point.
	MinEaseFactor     float64
	InitialEaseFactor float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	PassThreshold     int
	FirstInterval     float64
	SecondInterval    float64
	MinEaseFactor     float64
	InitialEaseFactor float64
}

// NewDefaultParams creates a new Params instance with SM-2 defaults.
func NewDefaultParams() *Params {
	return &Params{
		MinQuality:    0,
		MaxQuality:    5,
		PassThreshold: 3,

		FirstInterval:  1,
		SecondInterval: 6,

		MinEaseFactor:     1.3,
		InitialEaseFactor: 2.5,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.PassThreshold > 0 {
		params.PassThreshold = config.PassThreshold
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.InitialEaseFactor > 0 {
		params.InitialEaseFactor = config.InitialEaseFactor
	}

	return params
}
