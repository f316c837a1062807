package constants

// NSQ topics and channels
const (
	// TopicSocialLocations carries simulated social-media location posts.
	TopicSocialLocations = "truck-social-locations"

	// ChannelTracking is this service's consumer channel.
	ChannelTracking = "tracking-service"
)
