package kafka

const (
	TopicQueueEntered  = "queue.entered"
	TopicQueueCalled   = "queue.called"
	TopicQueueStarted  = "queue.started"
	TopicQueueFinished = "queue.finished"
	TopicQueueLeft     = "queue.left"
	TopicQueueNoShow   = "queue.no_show"

	TopicBarberActivated   = "barber.activated"
	TopicBarberDeactivated = "barber.deactivated"

	TopicBarberAvailabilityChanged = "barber.availability_changed"
	TopicBarbershopConfigUpdated   = "barbershop.config_updated"
)
