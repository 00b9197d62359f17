// Package launch assembles the literal training configuration for the
// external CFAR RNN trainer (rnn_train.py) and starts it. The trainer owns
// the model, the training loop, and all output under save_dir/log_dir; this
// package only produces the exact argument list the trainer expects.
package launch

import (
	"fmt"
	"os"

	"github.com/radarml/cfar_rnn_launcher/launch/parameters"

	"gopkg.in/yaml.v3"
)

// Config is the full set of values handed to the trainer, plus the
// interpreter and script used to start it.
type Config struct {
	Python  string `yaml:"python"`
	Trainer string `yaml:"trainer"`

	// DatasetPaths[i] is calibrated against CalibrationPaths[i]. The two
	// lists must be the same length; calibration entries may repeat.
	DatasetPaths     []string `yaml:"dataset_paths"`
	CalibrationPaths []string `yaml:"calibration_paths"`

	LearningRate        float64 `yaml:"learning_rate"`
	BatchSize           int     `yaml:"batch_size"`
	NumWorkers          int     `yaml:"num_workers"`
	TotalSteps          int     `yaml:"total_steps"`
	WeightDecay         float64 `yaml:"weight_decay"`
	Optimizer           string  `yaml:"optimizer"`
	StepSize            int     `yaml:"step_size"`
	Gamma               float64 `yaml:"gamma"`
	SaveDir             string  `yaml:"save_dir"`
	VisualizationStride int     `yaml:"visualization_stride"`
	GPUs                int     `yaml:"gpus"`
	LogDir              string  `yaml:"log_dir"`
	LossType            string  `yaml:"loss_type"`
}

// DefaultConfig returns the literal launch configuration from the
// parameters package. The path slices are copied so callers can edit a
// config without touching the literals.
func DefaultConfig() Config {
	datasets := make([]string, len(parameters.DATASET_PATHS))
	copy(datasets, parameters.DATASET_PATHS)

	calibrations := make([]string, len(parameters.CALIBRATION_PATHS))
	copy(calibrations, parameters.CALIBRATION_PATHS)

	return Config{
		Python:  parameters.PYTHON,
		Trainer: parameters.TRAINER,

		DatasetPaths:     datasets,
		CalibrationPaths: calibrations,

		LearningRate:        parameters.LEARNING_RATE,
		BatchSize:           parameters.BATCH_SIZE,
		NumWorkers:          parameters.NUM_WORKERS,
		TotalSteps:          parameters.TOTAL_STEPS,
		WeightDecay:         parameters.WEIGHT_DECAY,
		Optimizer:           parameters.OPTIMIZER,
		StepSize:            parameters.STEP_SIZE,
		Gamma:               parameters.GAMMA,
		SaveDir:             parameters.SAVE_DIR,
		VisualizationStride: parameters.VISUALIZATION_STRIDE,
		GPUs:                parameters.GPUS,
		LogDir:              parameters.LOG_DIR,
		LossType:            parameters.LOSS_TYPE,
	}
}

// Validate checks the pairing invariant between the two path lists. The
// trainer pairs the lists positionally, so mismatched lengths would
// silently mis-calibrate datasets. Duplicate calibration entries are fine.
func (c *Config) Validate() error {
	if len(c.DatasetPaths) == 0 {
		return fmt.Errorf("no dataset paths configured")
	}

	if len(c.DatasetPaths) != len(c.CalibrationPaths) {
		return fmt.Errorf("%d dataset paths but %d calibration paths, lists must pair positionally",
			len(c.DatasetPaths), len(c.CalibrationPaths))
	}

	return nil
}

// LoadProfile overlays a YAML launch profile on the default configuration.
// Fields absent from the profile keep their default values.
func LoadProfile(path string) (Config, error) {
	cfg := DefaultConfig()

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading profile: %w", err)
	}

	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing profile %q: %w", path, err)
	}

	return cfg, nil
}
