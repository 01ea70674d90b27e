package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the periodic sweep jobs
const (
	LogMsgStaminaSweepFailed = "Stamina sweep failed"
	LogMsgDungeonSweepFailed = "Dungeon sweep failed"
	LogMsgRestockSweepFailed = "Restock sweep failed"
	LogMsgSweepTickDropped   = "Sweep tick dropped, previous tick still queued"
)
