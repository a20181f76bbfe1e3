package constants

// NSQ topics and channels
const (
	TopicOrderStatusChanged = "order.status.changed"

	ChannelNotifier = "notifier"
)
