package launch

import "strconv"

// Argv builds the trainer's argument vector. The shape is fixed: each path
// list is a flag followed by a space-separated run of values terminated by
// the next flag, then the scalar options in a fixed order. The output is
// fully determined by the config, so repeated calls are byte-identical.
func (c Config) Argv() []string {
	args := make([]string, 0, 2+len(c.DatasetPaths)+len(c.CalibrationPaths)+26)

	args = append(args, "--dataset_paths")
	args = append(args, c.DatasetPaths...)
	args = append(args, "--calibration_paths")
	args = append(args, c.CalibrationPaths...)

	args = append(args,
		"--learning_rate", formatFloat(c.LearningRate),
		"--batch_size", strconv.Itoa(c.BatchSize),
		"--num_workers", strconv.Itoa(c.NumWorkers),
		"--total_steps", strconv.Itoa(c.TotalSteps),
		"--weight_decay", formatFloat(c.WeightDecay),
		"--optimizer", c.Optimizer,
		"--step_size", strconv.Itoa(c.StepSize),
		"--gamma", formatFloat(c.Gamma),
		"--save_dir", c.SaveDir,
		"--visualization_stride", strconv.Itoa(c.VisualizationStride),
		"--gpus", strconv.Itoa(c.GPUs),
		"--log_dir", c.LogDir,
		"--loss_type", c.LossType,
	)

	return args
}

// CommandLine is Argv prefixed with the interpreter and trainer script,
// i.e. the full command as it would appear in a shell.
func (c Config) CommandLine() []string {
	return append([]string{c.Python, c.Trainer}, c.Argv()...)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
