package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/radarml/cfar_rnn_launcher/launch/parameters"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name         string
		datasets     []string
		calibrations []string
		wantErr      bool
	}{
		{"defaults", parameters.DATASET_PATHS, parameters.CALIBRATION_PATHS, false},
		{"empty", nil, nil, true},
		{"missing calibration", []string{"/a", "/b"}, []string{"/c"}, true},
		{"extra calibration", []string{"/a"}, []string{"/c", "/d"}, true},
		{"duplicate calibrations are legal", []string{"/a", "/b"}, []string{"/c", "/c"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DatasetPaths = c.datasets
			cfg.CalibrationPaths = c.calibrations

			err := cfg.Validate()
			if c.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfigCopiesLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DatasetPaths[0] = "/tmp/mutated"

	require.Equal(t, "/mnt/radar/cfar/captures/2023_10_12_highway_a", DefaultConfig().DatasetPaths[0])
	require.Equal(t, "/mnt/radar/cfar/captures/2023_10_12_highway_a", parameters.DATASET_PATHS[0])
}

func TestLoadProfileOverlay(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(profile, []byte(
		"batch_size: 32\n"+
			"dataset_paths: [/data/x, /data/y]\n"+
			"calibration_paths: [/data/cal, /data/cal]\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadProfile(profile)
	require.NoError(t, err)

	require.Equal(t, 32, cfg.BatchSize)
	require.Equal(t, []string{"/data/x", "/data/y"}, cfg.DatasetPaths)
	require.Equal(t, []string{"/data/cal", "/data/cal"}, cfg.CalibrationPaths)

	// Everything the profile does not mention keeps its default.
	require.Equal(t, parameters.LEARNING_RATE, cfg.LearningRate)
	require.Equal(t, parameters.OPTIMIZER, cfg.Optimizer)
	require.Equal(t, parameters.TOTAL_STEPS, cfg.TotalSteps)
	require.Equal(t, parameters.PYTHON, cfg.Python)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadProfileBadYAML(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("batch_size: [not, a, scalar"), 0644))

	_, err := LoadProfile(profile)
	require.Error(t, err)
}
