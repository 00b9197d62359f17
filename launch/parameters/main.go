package parameters

const (
	LEARNING_RATE        float64 = 1e-4
	BATCH_SIZE           int     = 16
	NUM_WORKERS          int     = 4
	TOTAL_STEPS          int     = 10000
	WEIGHT_DECAY         float64 = 1e-2
	OPTIMIZER            string  = "AdamW"
	STEP_SIZE            int     = 1000
	GAMMA                float64 = 0.5
	SAVE_DIR             string  = "./checkpoints"
	VISUALIZATION_STRIDE int     = 100
	GPUS                 int     = 1
	LOG_DIR              string  = "./logs"
	LOSS_TYPE            string  = "l1"

	PYTHON  string = "python3"
	TRAINER string = "rnn_train.py"
)

// DATASET_PATHS[i] is calibrated against CALIBRATION_PATHS[i]. Each
// calibration recording covers both capture passes from the same session,
// which is why calibration entries repeat.
var DATASET_PATHS = []string{
	"/mnt/radar/cfar/captures/2023_10_12_highway_a",
	"/mnt/radar/cfar/captures/2023_10_12_highway_b",
	"/mnt/radar/cfar/captures/2023_10_19_parking_a",
	"/mnt/radar/cfar/captures/2023_10_19_parking_b",
	"/mnt/radar/cfar/captures/2023_11_02_urban_a",
	"/mnt/radar/cfar/captures/2023_11_02_urban_b",
	"/mnt/radar/cfar/captures/2023_11_09_tunnel_a",
	"/mnt/radar/cfar/captures/2023_11_09_tunnel_b",
}

var CALIBRATION_PATHS = []string{
	"/mnt/radar/cfar/calibration/2023_10_12_background",
	"/mnt/radar/cfar/calibration/2023_10_12_background",
	"/mnt/radar/cfar/calibration/2023_10_19_background",
	"/mnt/radar/cfar/calibration/2023_10_19_background",
	"/mnt/radar/cfar/calibration/2023_11_02_background",
	"/mnt/radar/cfar/calibration/2023_11_02_background",
	"/mnt/radar/cfar/calibration/2023_11_09_background",
	"/mnt/radar/cfar/calibration/2023_11_09_background",
}
