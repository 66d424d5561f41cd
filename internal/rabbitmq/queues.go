package rabbitmq

const (
	FOLLOWS_QUEUE = "follows"
)
