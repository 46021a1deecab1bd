package common

const (
	RedisStreamPatrimonyTasks = "patrimony.task.execution"

	RedisStreamGroup    = "worker-group"
	RedisStreamConsumer = "worker-consumer"

	// Task types dispatched through the patrimony task stream.
	TaskTypeQuoteRefresh = "quote_refresh"
	TaskTypeAlertCheck   = "alert_check"
	TaskTypeCleanup      = "cleanup"
)
